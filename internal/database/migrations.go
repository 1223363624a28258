package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes the board and view queries rely on
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Sibling lookup for order assignment
		{"tasks", "idx_tasks_sibling_group", "project_id, section_id, parent_task_id"},
		{"tasks", "idx_tasks_parent_task_id", "parent_task_id"},

		// Today / completed views
		{"tasks", "idx_tasks_status_deadline", "status, deadline_at"},
		{"tasks", "idx_tasks_updated_at", "updated_at"},

		{"sections", "idx_sections_project_order", "project_id, sort_order"},
		{"task_tags", "idx_task_tags_tag_id", "tag_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("database: created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}

// MigrateDatabase runs the steps AutoMigrate does not cover
func MigrateDatabase(db *gorm.DB) error {
	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
