package repository

import (
	"context"

	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkspaceRepository is a GORM implementation of WorkspaceRepository
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

func (r *GormWorkspaceRepository) Create(ctx context.Context, ws *models.Workspace) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ws).Error
}

func (r *GormWorkspaceRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Workspace, error) {
	var ws models.Workspace
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *GormWorkspaceRepository) ListWithProjects(ctx context.Context, ownerID string) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	err := r.db.WithContext(ctx).
		Preload("Projects", func(db *gorm.DB) *gorm.DB {
			return db.Order("projects.created_at ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&workspaces).Error
	return workspaces, err
}

func (r *GormWorkspaceRepository) Rename(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).Model(&models.Workspace{ID: id}).Update("name", name).Error
}

// Delete removes the workspace's projects bottom-up, then the workspace
func (r *GormWorkspaceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var projectIDs []string
		if err := tx.Model(&models.Project{}).Where("workspace_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		for _, projectID := range projectIDs {
			if err := deleteProjectTree(tx, projectID); err != nil {
				return err
			}
		}

		return tx.Delete(&models.Workspace{ID: id}).Error
	})
}

func (r *GormWorkspaceRepository) AssignMissingOwner(ctx context.Context, ownerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Workspace{}).
		Where("owner_id = ? OR owner_id IS NULL", "").
		UpdateColumn("owner_id", ownerID)
	return result.RowsAffected, result.Error
}
