package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/taskboard-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// TopLevel restricts a task query to tasks without a parent
func TopLevel(db *gorm.DB) *gorm.DB {
	return db.Where("tasks.parent_task_id IS NULL")
}

// InOrder sorts rows by position, breaking ties by creation time
func InOrder(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".sort_order ASC").Order(table + ".created_at ASC")
	}
}
