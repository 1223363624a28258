package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/effort"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/schemas"
)

// ProjectService handles project business logic
type ProjectService struct {
	projects repository.ProjectRepository
	owner    *Ownership
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects repository.ProjectRepository, owner *Ownership) *ProjectService {
	return &ProjectService{
		projects: projects,
		owner:    owner,
	}
}

// Board is a project laid out by section, with open effort totals
type Board struct {
	Project           models.Project
	Sections          []SectionColumn
	Unsectioned       []models.Task
	UnsectionedEffort int
	TotalEffort       int
}

// SectionColumn is one section of a board
type SectionColumn struct {
	Section models.Section
	Tasks   []models.Task
	Effort  int
}

// List returns the account's projects ordered by name
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects, err := s.projects.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Board loads an owned project and sums open effort per section, for the
// unsectioned tasks, and for the whole project
func (s *ProjectService) Board(ctx context.Context, ownerID, id string) (*Board, error) {
	if _, err := s.owner.Project(ctx, ownerID, id); err != nil {
		return nil, err
	}

	project, err := s.projects.LoadBoard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	board := &Board{Project: *project, Unsectioned: project.Tasks}
	board.Project.Sections = nil
	board.Project.Tasks = nil

	if board.UnsectionedEffort, err = effort.SumTasks(project.Tasks); err != nil {
		return nil, err
	}
	board.TotalEffort = board.UnsectionedEffort

	for _, section := range project.Sections {
		sum, err := effort.SumTasks(section.Tasks)
		if err != nil {
			return nil, err
		}
		tasks := section.Tasks
		section.Tasks = nil
		board.Sections = append(board.Sections, SectionColumn{Section: section, Tasks: tasks, Effort: sum})
		board.TotalEffort += sum
	}

	return board, nil
}

// Create creates a project in an owned workspace
func (s *ProjectService) Create(ctx context.Context, ownerID string, input schemas.CreateProject) (*models.Project, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}
	if _, err := s.owner.Workspace(ctx, ownerID, input.WorkspaceID); err != nil {
		return nil, err
	}

	project := &models.Project{WorkspaceID: input.WorkspaceID, Name: input.Name}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Rename renames an owned project
func (s *ProjectService) Rename(ctx context.Context, ownerID, id string, input schemas.Rename) error {
	if err := schemas.Validate(&input); err != nil {
		return err
	}
	if _, err := s.owner.Project(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.projects.Rename(ctx, id, input.Name); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete deletes an owned project with its sections and tasks
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owner.Project(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
