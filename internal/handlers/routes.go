package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/billing"
	"github.com/yukikurage/taskboard-api/internal/identity"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// Deps is everything the HTTP layer needs
type Deps struct {
	Verifier   identity.Verifier
	Billing    billing.Checker
	Bus        *refresh.Bus
	Workspaces *services.WorkspaceService
	Projects   *services.ProjectService
	Sections   *services.SectionService
	Tasks      *services.TaskService
	Tags       *services.TagService
}

// RegisterRoutes mounts the API under /api. Session middleware, when used,
// must be installed on r beforehand.
func RegisterRoutes(r *gin.Engine, d Deps) {
	authHandler := NewAuthHandler(d.Verifier, d.Billing)
	workspaceHandler := NewWorkspaceHandler(d.Workspaces, d.Bus)
	projectHandler := NewProjectHandler(d.Projects, d.Bus)
	sectionHandler := NewSectionHandler(d.Sections, d.Bus)
	taskHandler := NewTaskHandler(d.Tasks, d.Bus)
	viewHandler := NewViewHandler(d.Tasks)
	tagHandler := NewTagHandler(d.Tags, d.Bus)
	eventHandler := NewEventHandler(d.Bus)

	requireAuth := middleware.RequireAuth(d.Verifier)
	writable := middleware.RequireWritable(d.Billing)

	api := r.Group("/api")
	{
		// Session exchange (public)
		auth := api.Group("/auth")
		{
			auth.POST("/session", authHandler.CreateSession)
			auth.DELETE("/session", authHandler.DeleteSession)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		protected := api.Group("")
		protected.Use(requireAuth)

		workspaces := protected.Group("/workspaces")
		{
			workspaces.GET("", workspaceHandler.ListWorkspaces)
			workspaces.POST("", writable, workspaceHandler.CreateWorkspace)
			workspaces.GET("/:id", workspaceHandler.GetWorkspace)
			workspaces.PATCH("/:id", writable, workspaceHandler.RenameWorkspace)
			workspaces.DELETE("/:id", writable, workspaceHandler.DeleteWorkspace)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", writable, projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetBoard)
			projects.PATCH("/:id", writable, projectHandler.RenameProject)
			projects.DELETE("/:id", writable, projectHandler.DeleteProject)
			projects.POST("/:id/tasks/suggest", writable, taskHandler.SuggestTasks)
		}

		sections := protected.Group("/sections")
		sections.Use(writable)
		{
			sections.POST("", sectionHandler.CreateSection)
			sections.PATCH("/:id", sectionHandler.RenameSection)
			sections.DELETE("/:id", sectionHandler.DeleteSection)
			sections.PATCH("/:id/order", sectionHandler.ReorderSection)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.POST("", writable, taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", writable, taskHandler.UpdateTask)
			tasks.DELETE("/:id", writable, taskHandler.DeleteTask)
			tasks.POST("/:id/toggle", writable, taskHandler.ToggleStatus)
			tasks.PATCH("/:id/section", writable, taskHandler.AssignSection)
			tasks.PATCH("/:id/order", writable, taskHandler.ReorderTask)
		}

		views := protected.Group("/views")
		views.Use(middleware.Timezone())
		{
			views.GET("/today", viewHandler.Today)
			views.GET("/completed", viewHandler.Completed)
			views.GET("/search", viewHandler.Search)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.POST("", writable, tagHandler.CreateTag)
			tags.PATCH("/:id", writable, tagHandler.UpdateTag)
			tags.DELETE("/:id", writable, tagHandler.DeleteTag)
			tags.GET("/:id/tasks", tagHandler.ListTagTasks)
		}

		protected.GET("/events", eventHandler.Stream)
	}
}
