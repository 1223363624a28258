package dto

import (
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/services"
	"github.com/yukikurage/taskboard-api/internal/utils"
)

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// RefDTO names a related project or section
type RefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           string            `json:"id"`
	ProjectID    string            `json:"projectId"`
	SectionID    *string           `json:"sectionId"`
	ParentTaskID *string           `json:"parentTaskId"`
	Name         string            `json:"name"`
	Description  *string           `json:"description"`
	DeadlineAt   *time.Time        `json:"deadlineAt"`
	Status       models.TaskStatus `json:"status"`
	Effort       *int              `json:"effort"`
	Order        int               `json:"order"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Tags         []TagDTO          `json:"tags"`
	Subtasks     []TaskDTO         `json:"subtasks"`
	Project      *RefDTO           `json:"project,omitempty"`
	Section      *RefDTO           `json:"section,omitempty"`
}

// TaskListResponse represents a page of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// SuggestionDTO represents a suggested, unsaved task
type SuggestionDTO struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	DeadlineAt  *time.Time `json:"deadlineAt"`
	Effort      *int       `json:"effort"`
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		ProjectID:    task.ProjectID,
		SectionID:    task.SectionID,
		ParentTaskID: task.ParentTaskID,
		Name:         task.Name,
		Description:  task.Description,
		DeadlineAt:   task.DeadlineAt,
		Status:       task.Status,
		Effort:       task.Effort,
		Order:        task.Order,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
		Tags:         make([]TagDTO, 0, len(task.TaskTags)),
		Subtasks:     ToTaskDTOs(task.Subtasks),
	}

	// Include tags if preloaded
	for _, link := range task.TaskTags {
		if link.Tag != nil {
			dto.Tags = append(dto.Tags, ToTagDTO(*link.Tag))
		}
	}

	if task.Project != nil {
		dto.Project = &RefDTO{ID: task.Project.ID, Name: task.Project.Name}
	}
	if task.Section != nil {
		dto.Section = &RefDTO{ID: task.Section.ID, Name: task.Section.Name}
	}

	return dto
}

// ToTaskDTOs converts tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	result := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		result[i] = ToTaskDTO(task)
	}
	return result
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	return TaskListResponse{
		Tasks:      ToTaskDTOs(tasks),
		Pagination: params.Response(total),
	}
}

// ToSuggestionDTOs converts suggested tasks
func ToSuggestionDTOs(suggestions []services.SuggestedTask) []SuggestionDTO {
	result := make([]SuggestionDTO, len(suggestions))
	for i, s := range suggestions {
		result[i] = SuggestionDTO{
			Name:        s.Name,
			Description: s.Description,
			DeadlineAt:  s.DeadlineAt,
			Effort:      s.Effort,
		}
	}
	return result
}
