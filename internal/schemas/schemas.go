// Package schemas declares the request payloads and their bounds.
package schemas

import (
	"time"
)

type CreateWorkspace struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CreateProject struct {
	WorkspaceID string `json:"workspaceId" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
}

type CreateSection struct {
	ProjectID string `json:"projectId" binding:"required"`
	Name      string `json:"name" binding:"required,max=100"`
}

// Rename updates a workspace, project or section name.
type Rename struct {
	Name string `json:"name" binding:"required,max=100"`
}

type Reorder struct {
	Order *int `json:"order" binding:"required"`
}

type CreateTask struct {
	ProjectID    string     `json:"projectId" binding:"required"`
	SectionID    *string    `json:"sectionId"`
	ParentTaskID *string    `json:"parentTaskId"`
	Name         string     `json:"name" binding:"required,max=500"`
	Description  *string    `json:"description" binding:"omitempty,max=5000"`
	DeadlineAt   *time.Time `json:"deadlineAt"`
	Effort       *int       `json:"effort" binding:"omitempty,oneof=1 2 3 5 8 13"`
	TagIDs       []string   `json:"tagIds"`
}

type UpdateTask struct {
	Name        Nullable[string]    `json:"name" binding:"omitempty,min=1,max=500"`
	Description Nullable[string]    `json:"description" binding:"omitempty,max=5000"`
	DeadlineAt  Nullable[time.Time] `json:"deadlineAt"`
	SectionID   Nullable[string]    `json:"sectionId"`
	Effort      Nullable[int]       `json:"effort" binding:"omitempty,oneof=1 2 3 5 8 13"`
	TagIDs      *[]string           `json:"tagIds"`
}

func (u *UpdateTask) check() error {
	if u.Name.Null {
		return ErrNameRequired
	}
	return nil
}

type AssignSection struct {
	SectionID *string `json:"sectionId"`
}

type CreateTag struct {
	Name  string  `json:"name" binding:"required,max=50"`
	Color *string `json:"color" binding:"omitempty,max=7,hexcolor"`
}

type UpdateTag struct {
	Name  Nullable[string] `json:"name" binding:"omitempty,min=1,max=50"`
	Color Nullable[string] `json:"color" binding:"omitempty,max=7,hexcolor"`
}

func (u *UpdateTag) check() error {
	if u.Name.Null {
		return ErrNameRequired
	}
	return nil
}

type CreateSession struct {
	IDToken string `json:"idToken" binding:"required"`
}

type SuggestTasks struct {
	Text string `json:"text" binding:"required,max=10000"`
}
