package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "OPEN"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

type Task struct {
	ID           string     `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID    string     `gorm:"type:varchar(36);not null" json:"project_id"`
	SectionID    *string    `gorm:"type:varchar(36)" json:"section_id"`
	ParentTaskID *string    `gorm:"type:varchar(36)" json:"parent_task_id"`
	Name         string     `gorm:"type:varchar(500);not null" json:"name"`
	Description  *string    `gorm:"type:text" json:"description"`
	DeadlineAt   *time.Time `json:"deadline_at"`
	Status       TaskStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	Effort       *int       `json:"effort"`
	Order        int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Project  *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Section  *Section  `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Subtasks []Task    `gorm:"foreignKey:ParentTaskID" json:"subtasks,omitempty"`
	TaskTags []TaskTag `gorm:"foreignKey:TaskID" json:"task_tags,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.Status == "" {
		t.Status = TaskStatusOpen
	}
	return nil
}

// IsTopLevel reports whether the task is not a subtask.
func (t Task) IsTopLevel() bool {
	return t.ParentTaskID == nil
}

// EffortStatus and EffortValue let tasks feed effort aggregation.
func (t Task) EffortStatus() TaskStatus { return t.Status }

func (t Task) EffortValue() *int { return t.Effort }
