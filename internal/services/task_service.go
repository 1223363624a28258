package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/utils"
)

var (
	ErrParentTaskNotFound = errors.New("Parent task not found")
	ErrSubtaskNesting     = errors.New("Subtasks cannot have subtasks (one-level nesting only)")
)

// TaskService handles task business logic
type TaskService struct {
	tasks     repository.TaskRepository
	owner     *Ownership
	suggester Suggester
	now       func() time.Time
}

// NewTaskService creates a new TaskService. suggester may be nil, which
// disables task suggestions.
func NewTaskService(tasks repository.TaskRepository, owner *Ownership, suggester Suggester) *TaskService {
	return &TaskService{
		tasks:     tasks,
		owner:     owner,
		suggester: suggester,
		now:       time.Now,
	}
}

// Create creates a task at the end of its (project, section, parent) group
func (s *TaskService) Create(ctx context.Context, ownerID string, input schemas.CreateTask) (*models.Task, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}

	project, err := s.owner.Project(ctx, ownerID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	sectionID := normalizeID(input.SectionID)
	if sectionID != nil {
		if _, err := s.owner.SectionInProject(ctx, ownerID, *sectionID, project.ID); err != nil {
			return nil, err
		}
	}

	parentID := normalizeID(input.ParentTaskID)
	if parentID != nil {
		if err := s.checkParent(ctx, ownerID, *parentID, project.ID); err != nil {
			return nil, err
		}
	}

	tagIDs, err := s.owner.Tags(ctx, ownerID, input.TagIDs)
	if err != nil {
		return nil, err
	}

	last, ok, err := s.tasks.MaxOrder(ctx, project.ID, sectionID, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task order: %w", err)
	}

	task := &models.Task{
		ProjectID:    project.ID,
		SectionID:    sectionID,
		ParentTaskID: parentID,
		Name:         input.Name,
		Description:  input.Description,
		DeadlineAt:   utcTime(input.DeadlineAt),
		Status:       models.TaskStatusOpen,
		Effort:       input.Effort,
		Order:        nextOrder(last, ok),
	}

	if err := s.tasks.Create(ctx, task, tagIDs); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.detail(ctx, task.ID)
}

// checkParent enforces one level of nesting: the parent must exist in the
// same project and must itself be top-level
func (s *TaskService) checkParent(ctx context.Context, ownerID, parentID, projectID string) error {
	parent, err := s.owner.Task(ctx, ownerID, parentID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return ErrParentTaskNotFound
		}
		return err
	}
	if parent.ProjectID != projectID {
		return ErrParentTaskNotFound
	}
	if !parent.IsTopLevel() {
		return ErrSubtaskNesting
	}
	return nil
}

// Get returns an owned task with subtasks, tags and section
func (s *TaskService) Get(ctx context.Context, ownerID, id string) (*models.Task, error) {
	if _, err := s.owner.Task(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return s.detail(ctx, id)
}

// Update applies a partial update. Absent fields are left alone, explicit
// nulls clear, and a tag list replaces the whole set.
func (s *TaskService) Update(ctx context.Context, ownerID, id string, input schemas.UpdateTask) (*models.Task, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}

	task, err := s.owner.Task(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Set {
		task.Name = input.Name.Value
	}
	input.Description.Apply(&task.Description)
	if input.DeadlineAt.Set {
		task.DeadlineAt = utcTime(input.DeadlineAt.Ptr())
	}
	if input.SectionID.Set {
		sectionID := normalizeID(input.SectionID.Ptr())
		if sectionID != nil {
			if _, err := s.owner.SectionInProject(ctx, ownerID, *sectionID, task.ProjectID); err != nil {
				return nil, err
			}
		}
		task.SectionID = sectionID
	}
	input.Effort.Apply(&task.Effort)

	var tagIDs *[]string
	if input.TagIDs != nil {
		ids, err := s.owner.Tags(ctx, ownerID, *input.TagIDs)
		if err != nil {
			return nil, err
		}
		tagIDs = &ids
	}

	if err := s.tasks.Update(ctx, task, tagIDs); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.detail(ctx, id)
}

// ToggleStatus flips OPEN and COMPLETED. Repeated calls alternate.
func (s *TaskService) ToggleStatus(ctx context.Context, ownerID, id string) (*models.Task, error) {
	task, err := s.owner.Task(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if task.Status == models.TaskStatusOpen {
		task.Status = models.TaskStatusCompleted
	} else {
		task.Status = models.TaskStatusOpen
	}

	if err := s.tasks.SetStatus(ctx, id, task.Status); err != nil {
		return nil, fmt.Errorf("failed to toggle status: %w", err)
	}

	return task, nil
}

// AssignSection moves a task into a section of its project, or out of any
// section when sectionID is nil. Order is kept as is.
func (s *TaskService) AssignSection(ctx context.Context, ownerID, id string, sectionID *string) error {
	task, err := s.owner.Task(ctx, ownerID, id)
	if err != nil {
		return err
	}

	sectionID = normalizeID(sectionID)
	if sectionID != nil {
		if _, err := s.owner.SectionInProject(ctx, ownerID, *sectionID, task.ProjectID); err != nil {
			return err
		}
	}

	if err := s.tasks.SetSection(ctx, id, sectionID); err != nil {
		return fmt.Errorf("failed to assign section: %w", err)
	}
	return nil
}

// Reorder sets a task's position without renumbering its siblings
func (s *TaskService) Reorder(ctx context.Context, ownerID, id string, input schemas.Reorder) error {
	if err := schemas.Validate(&input); err != nil {
		return err
	}
	if _, err := s.owner.Task(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.tasks.SetOrder(ctx, id, *input.Order); err != nil {
		return fmt.Errorf("failed to reorder task: %w", err)
	}
	return nil
}

// Delete deletes an owned task with its subtasks and tag links
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owner.Task(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Today lists OPEN top-level tasks due on the local day containing now
func (s *TaskService) Today(ctx context.Context, ownerID string, now time.Time) ([]models.Task, error) {
	start, end := utils.DayBounds(now)

	tasks, err := s.tasks.Today(ctx, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's tasks: %w", err)
	}
	return tasks, nil
}

// Completed lists completed top-level tasks, optionally for one project
func (s *TaskService) Completed(ctx context.Context, ownerID string, projectID *string, params utils.PaginationParams) ([]models.Task, int64, error) {
	projectID = normalizeID(projectID)
	if projectID != nil {
		if _, err := s.owner.Project(ctx, ownerID, *projectID); err != nil {
			return nil, 0, err
		}
	}

	tasks, total, err := s.tasks.Completed(ctx, repository.CompletedFilter{
		OwnerID:    ownerID,
		ProjectID:  projectID,
		Pagination: params,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	return tasks, total, nil
}

// Search matches query against task names and descriptions. A blank query
// matches nothing and does not touch storage.
func (s *TaskService) Search(ctx context.Context, ownerID, query string) ([]models.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" || ownerID == "" {
		return []models.Task{}, nil
	}

	tasks, err := s.tasks.Search(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) detail(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.tasks.FindDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return task, nil
}

// normalizeID treats an empty id like an absent one
func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
