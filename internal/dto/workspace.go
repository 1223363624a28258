package dto

import (
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SidebarProjectDTO is a project with its count of open top-level tasks
type SidebarProjectDTO struct {
	ProjectDTO
	OpenTaskCount int64 `json:"openTaskCount"`
}

// WorkspaceDTO represents a workspace with its projects
type WorkspaceDTO struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	CreatedAt time.Time           `json:"createdAt"`
	Projects  []SidebarProjectDTO `json:"projects"`
}

// SectionDTO represents a board column
type SectionDTO struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Order  int       `json:"order"`
	Effort int       `json:"effort"`
	Tasks  []TaskDTO `json:"tasks"`
}

// BoardDTO represents a project laid out by section
type BoardDTO struct {
	Project           ProjectDTO   `json:"project"`
	Sections          []SectionDTO `json:"sections"`
	UnsectionedTasks  []TaskDTO    `json:"unsectionedTasks"`
	UnsectionedEffort int          `json:"unsectionedEffort"`
	TotalEffort       int          `json:"totalEffort"`
}

// TagWithCountDTO represents a tag with its task count
type TagWithCountDTO struct {
	TagDTO
	TaskCount int64 `json:"taskCount"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		WorkspaceID: project.WorkspaceID,
		Name:        project.Name,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectDTOs converts projects, never returning nil
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	result := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		result[i] = ToProjectDTO(p)
	}
	return result
}

// ToWorkspaceDTOs converts the sidebar tree
func ToWorkspaceDTOs(sidebar *services.Sidebar) []WorkspaceDTO {
	result := make([]WorkspaceDTO, len(sidebar.Workspaces))
	for i, ws := range sidebar.Workspaces {
		projects := make([]SidebarProjectDTO, len(ws.Projects))
		for j, p := range ws.Projects {
			projects[j] = SidebarProjectDTO{
				ProjectDTO:    ToProjectDTO(p),
				OpenTaskCount: sidebar.OpenCounts[p.ID],
			}
		}
		result[i] = WorkspaceDTO{
			ID:        ws.ID,
			Name:      ws.Name,
			CreatedAt: ws.CreatedAt,
			Projects:  projects,
		}
	}
	return result
}

// ToBoardDTO converts a project board
func ToBoardDTO(board *services.Board) BoardDTO {
	sections := make([]SectionDTO, len(board.Sections))
	for i, col := range board.Sections {
		sections[i] = SectionDTO{
			ID:     col.Section.ID,
			Name:   col.Section.Name,
			Order:  col.Section.Order,
			Effort: col.Effort,
			Tasks:  ToTaskDTOs(col.Tasks),
		}
	}

	return BoardDTO{
		Project:           ToProjectDTO(board.Project),
		Sections:          sections,
		UnsectionedTasks:  ToTaskDTOs(board.Unsectioned),
		UnsectionedEffort: board.UnsectionedEffort,
		TotalEffort:       board.TotalEffort,
	}
}

// ToTagWithCountDTOs converts the tag list
func ToTagWithCountDTOs(tags []services.TagWithCount) []TagWithCountDTO {
	result := make([]TagWithCountDTO, len(tags))
	for i, t := range tags {
		result[i] = TagWithCountDTO{TagDTO: ToTagDTO(t.Tag), TaskCount: t.TaskCount}
	}
	return result
}
