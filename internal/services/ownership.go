package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

// Absence and foreign ownership share one error per kind so callers cannot
// tell the two apart.
var (
	ErrWorkspaceNotFound = errors.New("Workspace not found")
	ErrProjectNotFound   = errors.New("Project not found")
	ErrSectionNotFound   = errors.New("Section not found")
	ErrTaskNotFound      = errors.New("Task not found")
	ErrTagNotFound       = errors.New("Tag not found")
)

// Ownership resolves entity ids against the requesting account. Every service
// operation goes through it before reading or writing an entity.
type Ownership struct {
	workspaces repository.WorkspaceRepository
	projects   repository.ProjectRepository
	sections   repository.SectionRepository
	tasks      repository.TaskRepository
	tags       repository.TagRepository
}

func NewOwnership(
	workspaces repository.WorkspaceRepository,
	projects repository.ProjectRepository,
	sections repository.SectionRepository,
	tasks repository.TaskRepository,
	tags repository.TagRepository,
) *Ownership {
	return &Ownership{
		workspaces: workspaces,
		projects:   projects,
		sections:   sections,
		tasks:      tasks,
		tags:       tags,
	}
}

func (o *Ownership) Workspace(ctx context.Context, ownerID, id string) (*models.Workspace, error) {
	return resolve(ownerID, id, ErrWorkspaceNotFound, func() (*models.Workspace, error) {
		return o.workspaces.FindOwned(ctx, id, ownerID)
	})
}

func (o *Ownership) Project(ctx context.Context, ownerID, id string) (*models.Project, error) {
	return resolve(ownerID, id, ErrProjectNotFound, func() (*models.Project, error) {
		return o.projects.FindOwned(ctx, id, ownerID)
	})
}

func (o *Ownership) Section(ctx context.Context, ownerID, id string) (*models.Section, error) {
	return resolve(ownerID, id, ErrSectionNotFound, func() (*models.Section, error) {
		return o.sections.FindOwned(ctx, id, ownerID)
	})
}

func (o *Ownership) Task(ctx context.Context, ownerID, id string) (*models.Task, error) {
	return resolve(ownerID, id, ErrTaskNotFound, func() (*models.Task, error) {
		return o.tasks.FindOwned(ctx, id, ownerID)
	})
}

func (o *Ownership) Tag(ctx context.Context, ownerID, id string) (*models.Tag, error) {
	return resolve(ownerID, id, ErrTagNotFound, func() (*models.Tag, error) {
		return o.tags.FindOwned(ctx, id, ownerID)
	})
}

// SectionInProject resolves a section and requires it to sit in projectID.
func (o *Ownership) SectionInProject(ctx context.Context, ownerID, id, projectID string) (*models.Section, error) {
	section, err := o.Section(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if section.ProjectID != projectID {
		return nil, ErrSectionNotFound
	}
	return section, nil
}

// Tags deduplicates ids and requires every one to be a tag owned by ownerID.
func (o *Ownership) Tags(ctx context.Context, ownerID string, ids []string) ([]string, error) {
	unique := uniqueStrings(ids)
	if len(unique) == 0 {
		return unique, nil
	}
	if ownerID == "" {
		return nil, ErrTagNotFound
	}

	count, err := o.tags.CountOwned(ctx, ownerID, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to verify tags: %w", err)
	}
	if int(count) != len(unique) {
		return nil, ErrTagNotFound
	}
	return unique, nil
}

func resolve[T any](ownerID, id string, notFound error, find func() (*T, error)) (*T, error) {
	if ownerID == "" || id == "" {
		return nil, notFound
	}

	entity, err := find()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to load entity: %w", err)
	}
	return entity, nil
}

// uniqueStrings removes duplicate and empty values, keeping first-seen order
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if v == "" {
			continue
		}
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
