package repository

import (
	"context"

	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

func (r *GormTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(tag).Error
}

func (r *GormTagRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *GormTagRepository) CountOwned(ctx context.Context, ownerID string, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Count(&count).Error
	return count, err
}

func (r *GormTagRepository) ListOwned(ctx context.Context, ownerID string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Order("created_at ASC").
		Find(&tags).Error
	return tags, err
}

func (r *GormTagRepository) CountTasks(ctx context.Context, tagIDs []string) (map[string]int64, error) {
	if len(tagIDs) == 0 {
		return map[string]int64{}, nil
	}

	var rows []countRow
	err := r.db.WithContext(ctx).
		Model(&models.TaskTag{}).
		Select("tag_id AS group_key, COUNT(*) AS total").
		Where("tag_id IN ?", tagIDs).
		Group("tag_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *GormTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Model(tag).Select("name", "color").Updates(tag).Error
}

func (r *GormTagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{ID: id}).Error
	})
}

func (r *GormTagRepository) AssignMissingOwner(ctx context.Context, ownerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("owner_id = ? OR owner_id IS NULL", "").
		UpdateColumn("owner_id", ownerID)
	return result.RowsAffected, result.Error
}
