package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/schemas"
)

// SectionService handles section business logic
type SectionService struct {
	sections repository.SectionRepository
	owner    *Ownership
}

// NewSectionService creates a new SectionService
func NewSectionService(sections repository.SectionRepository, owner *Ownership) *SectionService {
	return &SectionService{
		sections: sections,
		owner:    owner,
	}
}

// Create appends a section after the project's last one
func (s *SectionService) Create(ctx context.Context, ownerID string, input schemas.CreateSection) (*models.Section, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}
	if _, err := s.owner.Project(ctx, ownerID, input.ProjectID); err != nil {
		return nil, err
	}

	last, ok, err := s.sections.MaxOrder(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find section order: %w", err)
	}

	section := &models.Section{ProjectID: input.ProjectID, Name: input.Name, Order: nextOrder(last, ok)}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return section, nil
}

// Rename renames an owned section
func (s *SectionService) Rename(ctx context.Context, ownerID, id string, input schemas.Rename) error {
	if err := schemas.Validate(&input); err != nil {
		return err
	}
	if _, err := s.owner.Section(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.sections.Rename(ctx, id, input.Name); err != nil {
		return fmt.Errorf("failed to update section: %w", err)
	}
	return nil
}

// Reorder sets a section's position without renumbering its siblings
func (s *SectionService) Reorder(ctx context.Context, ownerID, id string, input schemas.Reorder) error {
	if err := schemas.Validate(&input); err != nil {
		return err
	}
	if _, err := s.owner.Section(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.sections.SetOrder(ctx, id, *input.Order); err != nil {
		return fmt.Errorf("failed to reorder section: %w", err)
	}
	return nil
}

// Delete deletes an owned section; its tasks become unsectioned
func (s *SectionService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owner.Section(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.sections.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

// nextOrder appends after last, or starts at 0 for an empty group.
// Concurrent appends may pick the same value; readers break ties by created_at.
func nextOrder(last int, ok bool) int {
	if !ok {
		return 0
	}
	return last + 1
}
