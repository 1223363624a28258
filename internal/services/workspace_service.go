package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/schemas"
)

// WorkspaceService handles workspace business logic
type WorkspaceService struct {
	workspaces repository.WorkspaceRepository
	projects   repository.ProjectRepository
	owner      *Ownership
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(workspaces repository.WorkspaceRepository, projects repository.ProjectRepository, owner *Ownership) *WorkspaceService {
	return &WorkspaceService{
		workspaces: workspaces,
		projects:   projects,
		owner:      owner,
	}
}

// Sidebar is the account's workspace tree with open task counts per project
type Sidebar struct {
	Workspaces []models.Workspace
	OpenCounts map[string]int64
}

// List returns the account's workspaces, oldest first, with their projects
func (s *WorkspaceService) List(ctx context.Context, ownerID string) (*Sidebar, error) {
	workspaces, err := s.workspaces.ListWithProjects(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	counts, err := s.countOpen(ctx, workspaces)
	if err != nil {
		return nil, err
	}
	return &Sidebar{Workspaces: workspaces, OpenCounts: counts}, nil
}

// Get returns one workspace with its projects
func (s *WorkspaceService) Get(ctx context.Context, ownerID, id string) (*Sidebar, error) {
	if _, err := s.owner.Workspace(ctx, ownerID, id); err != nil {
		return nil, err
	}

	all, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, ws := range all.Workspaces {
		if ws.ID == id {
			return &Sidebar{Workspaces: []models.Workspace{ws}, OpenCounts: all.OpenCounts}, nil
		}
	}
	return nil, ErrWorkspaceNotFound
}

// Create creates a workspace owned by ownerID
func (s *WorkspaceService) Create(ctx context.Context, ownerID string, input schemas.CreateWorkspace) (*models.Workspace, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}

	ws := &models.Workspace{Name: input.Name, OwnerID: ownerID}
	if err := s.workspaces.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// Rename renames an owned workspace
func (s *WorkspaceService) Rename(ctx context.Context, ownerID, id string, input schemas.Rename) error {
	if err := schemas.Validate(&input); err != nil {
		return err
	}
	if _, err := s.owner.Workspace(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.workspaces.Rename(ctx, id, input.Name); err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	return nil
}

// Delete deletes an owned workspace and everything in it
func (s *WorkspaceService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owner.Workspace(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.workspaces.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}

func (s *WorkspaceService) countOpen(ctx context.Context, workspaces []models.Workspace) (map[string]int64, error) {
	var projectIDs []string
	for _, ws := range workspaces {
		for _, p := range ws.Projects {
			projectIDs = append(projectIDs, p.ID)
		}
	}

	counts, err := s.projects.CountOpenTopLevel(ctx, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count open tasks: %w", err)
	}
	return counts, nil
}
