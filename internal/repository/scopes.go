package repository

import (
	"github.com/yukikurage/taskboard-api/internal/database"
	"gorm.io/gorm"
)

// ownedProjects joins projects to their workspace and keeps the owner's rows
func ownedProjects(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN workspaces ON workspaces.id = projects.workspace_id").
			Where("workspaces.owner_id = ?", ownerID)
	}
}

// ownedTasks joins tasks up to their workspace and keeps the owner's rows
func ownedTasks(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN projects ON projects.id = tasks.project_id").
			Joins("JOIN workspaces ON workspaces.id = projects.workspace_id").
			Where("workspaces.owner_id = ?", ownerID)
	}
}

// withCard preloads what a task card shows: subtasks in order, tags, section
func withCard(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Subtasks", database.InOrder("tasks")).
		Preload("TaskTags.Tag").
		Preload("Section")
}

type countRow struct {
	GroupKey string
	Total    int64
}

func toCountMap(rows []countRow) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.GroupKey] = r.Total
	}
	return counts
}
