package repository

import (
	"context"

	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSectionRepository is a GORM implementation of SectionRepository
type GormSectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &GormSectionRepository{db: db}
}

func (r *GormSectionRepository) Create(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(section).Error
}

func (r *GormSectionRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = sections.project_id").
		Scopes(ownedProjects(ownerID)).
		Where("sections.id = ?", id).
		First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *GormSectionRepository) MaxOrder(ctx context.Context, projectID string) (int, bool, error) {
	var last models.Section
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order DESC").
		Limit(1).
		Find(&last)
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	return last.Order, true, nil
}

func (r *GormSectionRepository) Rename(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).Model(&models.Section{ID: id}).Update("name", name).Error
}

func (r *GormSectionRepository) SetOrder(ctx context.Context, id string, order int) error {
	return r.db.WithContext(ctx).Model(&models.Section{ID: id}).Update("sort_order", order).Error
}

// Delete clears section_id on the section's tasks before removing it; the
// tasks themselves survive as unsectioned tasks
func (r *GormSectionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("section_id = ?", id).
			UpdateColumn("section_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Section{ID: id}).Error
	})
}
