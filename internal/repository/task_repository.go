package repository

import (
	"context"
	"strings"
	"time"

	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a task and links its tags in one transaction
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task, tagIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}
		return linkTags(tx, task.ID, tagIDs)
	})
}

func (r *GormTaskRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Scopes(ownedTasks(ownerID)).
		Where("tasks.id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) FindDetail(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Scopes(withCard).
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) MaxOrder(ctx context.Context, projectID string, sectionID, parentTaskID *string) (int, bool, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if sectionID == nil {
		query = query.Where("section_id IS NULL")
	} else {
		query = query.Where("section_id = ?", *sectionID)
	}
	if parentTaskID == nil {
		query = query.Where("parent_task_id IS NULL")
	} else {
		query = query.Where("parent_task_id = ?", *parentTaskID)
	}

	var last models.Task
	result := query.Order("sort_order DESC").Limit(1).Find(&last)
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	return last.Order, true, nil
}

// Update saves the editable columns and optionally swaps the tag set
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task, tagIDs *[]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).
			Select("name", "description", "deadline_at", "section_id", "effort").
			Updates(task).Error; err != nil {
			return err
		}

		if tagIDs == nil {
			return nil
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		return linkTags(tx, task.ID, *tagIDs)
	})
}

func (r *GormTaskRepository) SetStatus(ctx context.Context, id string, status models.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&models.Task{ID: id}).Update("status", status).Error
}

func (r *GormTaskRepository) SetSection(ctx context.Context, id string, sectionID *string) error {
	return r.db.WithContext(ctx).Model(&models.Task{ID: id}).Update("section_id", sectionID).Error
}

func (r *GormTaskRepository) SetOrder(ctx context.Context, id string, order int) error {
	return r.db.WithContext(ctx).Model(&models.Task{ID: id}).Update("sort_order", order).Error
}

// Delete removes tag links of the task and its subtasks, the subtasks, then the task
func (r *GormTaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subtaskIDs []string
		if err := tx.Model(&models.Task{}).Where("parent_task_id = ?", id).Pluck("id", &subtaskIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("task_id IN ?", append(subtaskIDs, id)).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_task_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{ID: id}).Error
	})
}

func (r *GormTaskRepository) Today(ctx context.Context, ownerID string, from, to time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Scopes(ownedTasks(ownerID), database.TopLevel, withCard).
		Preload("Project").
		Where("tasks.status = ?", models.TaskStatusOpen).
		Where("tasks.deadline_at >= ? AND tasks.deadline_at < ?", from.UTC(), to.UTC()).
		Order("tasks.deadline_at ASC").
		Order("tasks.created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *GormTaskRepository) Completed(ctx context.Context, filter CompletedFilter) ([]models.Task, int64, error) {
	base := func() *gorm.DB {
		query := r.db.WithContext(ctx).
			Model(&models.Task{}).
			Scopes(ownedTasks(filter.OwnerID), database.TopLevel).
			Where("tasks.status = ?", models.TaskStatusCompleted)
		if filter.ProjectID != nil {
			query = query.Where("tasks.project_id = ?", *filter.ProjectID)
		}
		return query
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	err := base().
		Scopes(withCard, database.Paginate(filter.Pagination)).
		Preload("Project").
		Order("tasks.updated_at DESC").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Search does a case-insensitive substring match; the query is matched
// literally, LIKE wildcards included
func (r *GormTaskRepository) Search(ctx context.Context, ownerID, query string) ([]models.Task, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Scopes(ownedTasks(ownerID), database.TopLevel, withCard).
		Preload("Project").
		Where("(LOWER(tasks.name) LIKE ? ESCAPE '!' OR LOWER(tasks.description) LIKE ? ESCAPE '!')", pattern, pattern).
		Order("tasks.updated_at DESC").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *GormTaskRepository) ByTag(ctx context.Context, ownerID, tagID string) ([]models.Task, error) {
	linked := r.db.Model(&models.TaskTag{}).
		Select("1").
		Where("task_tags.task_id = tasks.id").
		Where("task_tags.tag_id = ?", tagID)

	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Scopes(ownedTasks(ownerID), database.TopLevel, withCard).
		Preload("Project").
		Where("EXISTS (?)", linked).
		Order("tasks.updated_at DESC").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func linkTags(tx *gorm.DB, taskID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]models.TaskTag, len(tagIDs))
	for i, tagID := range tagIDs {
		links[i] = models.TaskTag{TaskID: taskID, TagID: tagID}
	}

	return tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
