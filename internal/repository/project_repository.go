package repository

import (
	"context"

	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

func (r *GormProjectRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Scopes(ownedProjects(ownerID)).
		Where("projects.id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) ListOwned(ctx context.Context, ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Scopes(ownedProjects(ownerID)).
		Order("projects.name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *GormProjectRepository) LoadBoard(ctx context.Context, id string) (*models.Project, error) {
	topLevelInOrder := func(db *gorm.DB) *gorm.DB {
		return database.InOrder("tasks")(database.TopLevel(db))
	}
	subtasksInOrder := database.InOrder("tasks")

	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Sections", database.InOrder("sections")).
		Preload("Sections.Tasks", topLevelInOrder).
		Preload("Sections.Tasks.Subtasks", subtasksInOrder).
		Preload("Sections.Tasks.TaskTags.Tag").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return topLevelInOrder(db.Where("tasks.section_id IS NULL"))
		}).
		Preload("Tasks.Subtasks", subtasksInOrder).
		Preload("Tasks.TaskTags.Tag").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) CountOpenTopLevel(ctx context.Context, projectIDs []string) (map[string]int64, error) {
	if len(projectIDs) == 0 {
		return map[string]int64{}, nil
	}

	var rows []countRow
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("project_id AS group_key, COUNT(*) AS total").
		Where("project_id IN ? AND status = ? AND parent_task_id IS NULL", projectIDs, models.TaskStatusOpen).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *GormProjectRepository) Rename(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).Model(&models.Project{ID: id}).Update("name", name).Error
}

func (r *GormProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteProjectTree(tx, id)
	})
}

// deleteProjectTree removes a project's tag links, subtasks, tasks, sections
// and finally the project, children first.
func deleteProjectTree(tx *gorm.DB, projectID string) error {
	taskIDs := tx.Model(&models.Task{}).Select("id").Where("project_id = ?", projectID)
	if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskTag{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id = ? AND parent_task_id IS NOT NULL", projectID).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&models.Section{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Project{ID: projectID}).Error
}
