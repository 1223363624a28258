package models

import (
	"time"

	"gorm.io/gorm"
)

type Section struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID string    `gorm:"type:varchar(36);index;not null" json:"project_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Order     int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Tasks   []Task   `gorm:"foreignKey:SectionID" json:"tasks,omitempty"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return nil
}
