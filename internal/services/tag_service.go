package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/schemas"
)

// TagService handles tag business logic
type TagService struct {
	tags  repository.TagRepository
	tasks repository.TaskRepository
	owner *Ownership
}

// NewTagService creates a new TagService
func NewTagService(tags repository.TagRepository, tasks repository.TaskRepository, owner *Ownership) *TagService {
	return &TagService{
		tags:  tags,
		tasks: tasks,
		owner: owner,
	}
}

// TagWithCount is a tag and how many tasks carry it
type TagWithCount struct {
	Tag       models.Tag
	TaskCount int64
}

// List returns the account's tags ordered by name with task counts
func (s *TagService) List(ctx context.Context, ownerID string) ([]TagWithCount, error) {
	tags, err := s.tags.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	counts, err := s.tags.CountTasks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count tag usage: %w", err)
	}

	result := make([]TagWithCount, len(tags))
	for i, t := range tags {
		result[i] = TagWithCount{Tag: t, TaskCount: counts[t.ID]}
	}
	return result, nil
}

// Create creates a tag owned by ownerID
func (s *TagService) Create(ctx context.Context, ownerID string, input schemas.CreateTag) (*models.Tag, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}

	tag := &models.Tag{
		OwnerID: ownerID,
		Name:    input.Name,
		Color:   input.Color,
	}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// Update changes the name and/or color of an owned tag
func (s *TagService) Update(ctx context.Context, ownerID, id string, input schemas.UpdateTag) (*models.Tag, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}

	tag, err := s.owner.Tag(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Set {
		tag.Name = input.Name.Value
	}
	input.Color.Apply(&tag.Color)

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return tag, nil
}

// Delete deletes an owned tag. Tasks keep existing without it.
func (s *TagService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owner.Tag(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// Tasks lists the top-level tasks carrying an owned tag
func (s *TagService) Tasks(ctx context.Context, ownerID, id string) ([]models.Task, error) {
	if _, err := s.owner.Tag(ctx, ownerID, id); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ByTag(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by tag: %w", err)
	}
	return tasks, nil
}
