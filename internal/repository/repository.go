package repository

import (
	"context"
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/utils"
)

// WorkspaceRepository defines the interface for workspace data access
type WorkspaceRepository interface {
	// Create creates a new workspace
	Create(ctx context.Context, ws *models.Workspace) error

	// FindOwned finds a workspace by ID if it belongs to ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*models.Workspace, error)

	// ListWithProjects lists the owner's workspaces, oldest first, with their projects
	ListWithProjects(ctx context.Context, ownerID string) ([]models.Workspace, error)

	// Rename updates the workspace name
	Rename(ctx context.Context, id, name string) error

	// Delete deletes a workspace and everything under it
	Delete(ctx context.Context, id string) error

	// AssignMissingOwner sets ownerID on every workspace without an owner
	AssignMissingOwner(ctx context.Context, ownerID string) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindOwned finds a project by ID if its workspace belongs to ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*models.Project, error)

	// ListOwned lists the owner's projects ordered by name
	ListOwned(ctx context.Context, ownerID string) ([]models.Project, error)

	// LoadBoard loads a project with its ordered sections, their top-level
	// tasks, and the unsectioned top-level tasks
	LoadBoard(ctx context.Context, id string) (*models.Project, error)

	// CountOpenTopLevel counts OPEN top-level tasks per project
	CountOpenTopLevel(ctx context.Context, projectIDs []string) (map[string]int64, error)

	// Rename updates the project name
	Rename(ctx context.Context, id, name string) error

	// Delete deletes a project with its sections, tasks and tag links
	Delete(ctx context.Context, id string) error
}

// SectionRepository defines the interface for section data access
type SectionRepository interface {
	// Create creates a new section
	Create(ctx context.Context, section *models.Section) error

	// FindOwned finds a section by ID if its project's workspace belongs to ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*models.Section, error)

	// MaxOrder returns the highest section order in a project; ok is false when
	// the project has no sections
	MaxOrder(ctx context.Context, projectID string) (order int, ok bool, err error)

	// Rename updates the section name
	Rename(ctx context.Context, id, name string) error

	// SetOrder moves a section to a new position
	SetOrder(ctx context.Context, id string, order int) error

	// Delete detaches the section's tasks and deletes the section
	Delete(ctx context.Context, id string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a task together with its tag links
	Create(ctx context.Context, task *models.Task, tagIDs []string) error

	// FindOwned finds a task by ID if its project's workspace belongs to ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*models.Task, error)

	// FindDetail finds a task with subtasks, tags and section loaded
	FindDetail(ctx context.Context, id string) (*models.Task, error)

	// MaxOrder returns the highest order among tasks sharing the
	// (project, section, parent) group; ok is false for an empty group
	MaxOrder(ctx context.Context, projectID string, sectionID, parentTaskID *string) (order int, ok bool, err error)

	// Update saves the editable fields and, when tagIDs is non-nil, replaces
	// the task's tag set
	Update(ctx context.Context, task *models.Task, tagIDs *[]string) error

	// SetStatus writes the task status
	SetStatus(ctx context.Context, id string, status models.TaskStatus) error

	// SetSection moves a task to a section, or out of any section when nil
	SetSection(ctx context.Context, id string, sectionID *string) error

	// SetOrder moves a task to a new position
	SetOrder(ctx context.Context, id string, order int) error

	// Delete deletes a task with its subtasks and tag links
	Delete(ctx context.Context, id string) error

	// Today lists OPEN top-level tasks with a deadline in [from, to)
	Today(ctx context.Context, ownerID string, from, to time.Time) ([]models.Task, error)

	// Completed lists COMPLETED top-level tasks, newest first
	Completed(ctx context.Context, filter CompletedFilter) ([]models.Task, int64, error)

	// Search matches the pattern against name or description of top-level tasks
	Search(ctx context.Context, ownerID, query string) ([]models.Task, error)

	// ByTag lists top-level tasks carrying a tag, newest first
	ByTag(ctx context.Context, ownerID, tagID string) ([]models.Task, error)
}

// CompletedFilter holds filtering options for the completed view
type CompletedFilter struct {
	OwnerID    string
	ProjectID  *string
	Pagination utils.PaginationParams
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// Create creates a new tag
	Create(ctx context.Context, tag *models.Tag) error

	// FindOwned finds a tag by ID if it belongs to ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*models.Tag, error)

	// CountOwned counts how many of ids are tags owned by ownerID
	CountOwned(ctx context.Context, ownerID string, ids []string) (int64, error)

	// ListOwned lists the owner's tags ordered by name
	ListOwned(ctx context.Context, ownerID string) ([]models.Tag, error)

	// CountTasks counts task links per tag
	CountTasks(ctx context.Context, tagIDs []string) (map[string]int64, error)

	// Update saves the tag name and color
	Update(ctx context.Context, tag *models.Tag) error

	// Delete deletes a tag and its task links
	Delete(ctx context.Context, id string) error

	// AssignMissingOwner sets ownerID on every tag without an owner
	AssignMissingOwner(ctx context.Context, ownerID string) (int64, error)
}
