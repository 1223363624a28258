package models

import (
	"time"

	"gorm.io/gorm"
)

type Tag struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	OwnerID   string    `gorm:"type:varchar(128);index;not null" json:"owner_id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Color     *string   `gorm:"type:varchar(7)" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	TaskTags []TaskTag `gorm:"foreignKey:TagID" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	return nil
}

// TaskTag associates a task with a tag. It carries no payload.
type TaskTag struct {
	TaskID string `gorm:"type:varchar(36);primarykey" json:"task_id"`
	TagID  string `gorm:"type:varchar(36);primarykey" json:"tag_id"`

	// Relations
	Task *Task `gorm:"foreignKey:TaskID" json:"-"`
	Tag  *Tag  `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}
