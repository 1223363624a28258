package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	alice = "account-alice"
	bob   = "account-bob"
)

type stubSuggester struct {
	tasks []SuggestedTask
	err   error
	text  string
}

func (s *stubSuggester) SuggestTasks(_ context.Context, text string, _ time.Time) ([]SuggestedTask, error) {
	s.text = text
	return s.tasks, s.err
}

// ServiceTestSuite runs the services against an in-memory database
type ServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	db         *gorm.DB
	workspaces *WorkspaceService
	projects   *ProjectService
	sections   *SectionService
	tasks      *TaskService
	tags       *TagService
	suggester  *stubSuggester
	wsRepo     repository.WorkspaceRepository
	tagRepo    repository.TagRepository
}

func (suite *ServiceTestSuite) SetupTest() {
	var err error
	suite.ctx = context.Background()

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(suite.db.AutoMigrate(database.Models()...))

	suite.wsRepo = repository.NewWorkspaceRepository(suite.db)
	projectRepo := repository.NewProjectRepository(suite.db)
	sectionRepo := repository.NewSectionRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	suite.tagRepo = repository.NewTagRepository(suite.db)

	owner := NewOwnership(suite.wsRepo, projectRepo, sectionRepo, taskRepo, suite.tagRepo)
	suite.suggester = &stubSuggester{}

	suite.workspaces = NewWorkspaceService(suite.wsRepo, projectRepo, owner)
	suite.projects = NewProjectService(projectRepo, owner)
	suite.sections = NewSectionService(sectionRepo, owner)
	suite.tasks = NewTaskService(taskRepo, owner, suite.suggester)
	suite.tags = NewTagService(suite.tagRepo, taskRepo, owner)
}

func (suite *ServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ServiceTestSuite) createProject(ownerID string) *models.Project {
	ws, err := suite.workspaces.Create(suite.ctx, ownerID, schemas.CreateWorkspace{Name: "Home"})
	suite.Require().NoError(err)
	project, err := suite.projects.Create(suite.ctx, ownerID, schemas.CreateProject{WorkspaceID: ws.ID, Name: "Chores"})
	suite.Require().NoError(err)
	return project
}

func (suite *ServiceTestSuite) createSection(ownerID, projectID, name string) *models.Section {
	section, err := suite.sections.Create(suite.ctx, ownerID, schemas.CreateSection{ProjectID: projectID, Name: name})
	suite.Require().NoError(err)
	return section
}

func (suite *ServiceTestSuite) createTask(ownerID string, input schemas.CreateTask) *models.Task {
	task, err := suite.tasks.Create(suite.ctx, ownerID, input)
	suite.Require().NoError(err)
	return task
}

func ptr[T any](v T) *T { return &v }

func (suite *ServiceTestSuite) TestForeignAccount_SeesNotFound() {
	project := suite.createProject(alice)
	task := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Laundry"})

	_, err := suite.tasks.Get(suite.ctx, bob, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)

	_, err = suite.projects.Board(suite.ctx, bob, project.ID)
	suite.ErrorIs(err, ErrProjectNotFound)

	err = suite.workspaces.Rename(suite.ctx, bob, project.WorkspaceID, schemas.Rename{Name: "Mine"})
	suite.ErrorIs(err, ErrWorkspaceNotFound)

	_, err = suite.projects.Create(suite.ctx, bob, schemas.CreateProject{WorkspaceID: project.WorkspaceID, Name: "Sneaky"})
	suite.ErrorIs(err, ErrWorkspaceNotFound)

	_, err = suite.tasks.Create(suite.ctx, bob, schemas.CreateTask{ProjectID: project.ID, Name: "Sneaky"})
	suite.ErrorIs(err, ErrProjectNotFound)

	suite.ErrorIs(suite.tasks.Delete(suite.ctx, bob, task.ID), ErrTaskNotFound)
	suite.ErrorIs(suite.tasks.Delete(suite.ctx, "", task.ID), ErrTaskNotFound)

	_, err = suite.tasks.Get(suite.ctx, alice, task.ID)
	suite.NoError(err)
}

func (suite *ServiceTestSuite) TestCreateTask_AppendsPerGroup() {
	project := suite.createProject(alice)
	section := suite.createSection(alice, project.ID, "Kitchen")

	first := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "One"})
	second := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Two"})
	inSection := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, SectionID: &section.ID, Name: "Three"})
	empty := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, SectionID: ptr(""), Name: "Four"})

	suite.Equal(0, first.Order)
	suite.Equal(1, second.Order)
	suite.Equal(0, inSection.Order)
	suite.Equal(2, empty.Order)
	suite.Nil(empty.SectionID)
	suite.Equal(models.TaskStatusOpen, first.Status)
}

func (suite *ServiceTestSuite) TestCreateTask_SubtaskRules() {
	project := suite.createProject(alice)
	other := suite.createProject(alice)

	parent := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Parent"})
	child := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, ParentTaskID: &parent.ID, Name: "Child"})
	suite.Equal(parent.ID, *child.ParentTaskID)
	suite.Equal(0, child.Order)

	_, err := suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: project.ID, ParentTaskID: &child.ID, Name: "Grandchild"})
	suite.ErrorIs(err, ErrSubtaskNesting)

	_, err = suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: other.ID, ParentTaskID: &parent.ID, Name: "Elsewhere"})
	suite.ErrorIs(err, ErrParentTaskNotFound)

	_, err = suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: project.ID, ParentTaskID: ptr("missing"), Name: "Orphan"})
	suite.ErrorIs(err, ErrParentTaskNotFound)

	detail, err := suite.tasks.Get(suite.ctx, alice, parent.ID)
	suite.Require().NoError(err)
	suite.Len(detail.Subtasks, 1)
}

func (suite *ServiceTestSuite) TestCreateTask_RejectsForeignReferences() {
	project := suite.createProject(alice)
	other := suite.createProject(alice)
	foreignSection := suite.createSection(alice, other.ID, "Elsewhere")

	_, err := suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: project.ID, SectionID: &foreignSection.ID, Name: "x"})
	suite.ErrorIs(err, ErrSectionNotFound)

	bobTag, err := suite.tags.Create(suite.ctx, bob, schemas.CreateTag{Name: "bob"})
	suite.Require().NoError(err)
	_, err = suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: project.ID, Name: "x", TagIDs: []string{bobTag.ID}})
	suite.ErrorIs(err, ErrTagNotFound)

	_, err = suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: project.ID, Name: ""})
	suite.True(schemas.IsValidation(err))

	_, err = suite.tasks.Create(suite.ctx, alice, schemas.CreateTask{ProjectID: project.ID, Name: "x", Effort: ptr(4)})
	suite.True(schemas.IsValidation(err))
}

func (suite *ServiceTestSuite) TestCreateTask_LinksTagsOnce() {
	project := suite.createProject(alice)
	tag, err := suite.tags.Create(suite.ctx, alice, schemas.CreateTag{Name: "home", Color: ptr("#ff0000")})
	suite.Require().NoError(err)

	task := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "x", TagIDs: []string{tag.ID, tag.ID}})
	suite.Require().Len(task.TaskTags, 1)
	suite.Equal("home", task.TaskTags[0].Tag.Name)
}

func (suite *ServiceTestSuite) TestToggleStatus_Alternates() {
	project := suite.createProject(alice)
	task := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Flip"})

	toggled, err := suite.tasks.ToggleStatus(suite.ctx, alice, task.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusCompleted, toggled.Status)

	toggled, err = suite.tasks.ToggleStatus(suite.ctx, alice, task.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusOpen, toggled.Status)

	_, err = suite.tasks.ToggleStatus(suite.ctx, bob, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *ServiceTestSuite) TestSectionDelete_KeepsTasksUnsectioned() {
	project := suite.createProject(alice)
	section := suite.createSection(alice, project.ID, "Kitchen")
	task := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, SectionID: &section.ID, Name: "Dishes"})

	suite.Require().NoError(suite.sections.Delete(suite.ctx, alice, section.ID))

	detail, err := suite.tasks.Get(suite.ctx, alice, task.ID)
	suite.Require().NoError(err)
	suite.Nil(detail.SectionID)

	board, err := suite.projects.Board(suite.ctx, alice, project.ID)
	suite.Require().NoError(err)
	suite.Empty(board.Sections)
	suite.Len(board.Unsectioned, 1)
}

func (suite *ServiceTestSuite) TestSectionCreate_AppendsAndReorders() {
	project := suite.createProject(alice)
	first := suite.createSection(alice, project.ID, "A")
	second := suite.createSection(alice, project.ID, "B")
	suite.Equal(0, first.Order)
	suite.Equal(1, second.Order)

	suite.Require().NoError(suite.sections.Reorder(suite.ctx, alice, second.ID, schemas.Reorder{Order: ptr(-1)}))

	board, err := suite.projects.Board(suite.ctx, alice, project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(board.Sections, 2)
	suite.Equal("B", board.Sections[0].Section.Name)

	err = suite.sections.Reorder(suite.ctx, alice, first.ID, schemas.Reorder{})
	suite.True(schemas.IsValidation(err))
}

func (suite *ServiceTestSuite) TestBoard_SumsOpenTopLevelEffort() {
	project := suite.createProject(alice)
	section := suite.createSection(alice, project.ID, "Doing")

	open := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, SectionID: &section.ID, Name: "a", Effort: ptr(3)})
	done := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, SectionID: &section.ID, Name: "b", Effort: ptr(5)})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, ParentTaskID: &open.ID, Name: "sub", Effort: ptr(8)})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "c", Effort: ptr(2)})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "d"})

	_, err := suite.tasks.ToggleStatus(suite.ctx, alice, done.ID)
	suite.Require().NoError(err)

	board, err := suite.projects.Board(suite.ctx, alice, project.ID)
	suite.Require().NoError(err)

	suite.Require().Len(board.Sections, 1)
	suite.Len(board.Sections[0].Tasks, 2)
	suite.Equal(3, board.Sections[0].Effort)
	suite.Len(board.Unsectioned, 2)
	suite.Equal(2, board.UnsectionedEffort)
	suite.Equal(5, board.TotalEffort)
	suite.Len(board.Sections[0].Tasks[0].Subtasks, 1)
}

func (suite *ServiceTestSuite) TestUpdateTask_Patch() {
	project := suite.createProject(alice)
	section := suite.createSection(alice, project.ID, "Kitchen")
	tagA, err := suite.tags.Create(suite.ctx, alice, schemas.CreateTag{Name: "a"})
	suite.Require().NoError(err)
	tagB, err := suite.tags.Create(suite.ctx, alice, schemas.CreateTag{Name: "b"})
	suite.Require().NoError(err)

	task := suite.createTask(alice, schemas.CreateTask{
		ProjectID:   project.ID,
		Name:        "Dishes",
		Description: ptr("after dinner"),
		Effort:      ptr(2),
		TagIDs:      []string{tagA.ID},
	})

	var input schemas.UpdateTask
	body := `{"description": null, "sectionId": "` + section.ID + `", "tagIds": ["` + tagB.ID + `"]}`
	suite.Require().NoError(json.Unmarshal([]byte(body), &input))

	updated, err := suite.tasks.Update(suite.ctx, alice, task.ID, input)
	suite.Require().NoError(err)
	suite.Equal("Dishes", updated.Name)
	suite.Nil(updated.Description)
	suite.Equal(section.ID, *updated.SectionID)
	suite.Equal(2, *updated.Effort)
	suite.Require().Len(updated.TaskTags, 1)
	suite.Equal(tagB.ID, updated.TaskTags[0].TagID)

	input = schemas.UpdateTask{}
	suite.Require().NoError(json.Unmarshal([]byte(`{"name": null}`), &input))
	_, err = suite.tasks.Update(suite.ctx, alice, task.ID, input)
	suite.ErrorIs(err, schemas.ErrNameRequired)

	input = schemas.UpdateTask{}
	suite.Require().NoError(json.Unmarshal([]byte(`{"effort": null, "sectionId": null, "tagIds": []}`), &input))
	updated, err = suite.tasks.Update(suite.ctx, alice, task.ID, input)
	suite.Require().NoError(err)
	suite.Nil(updated.Effort)
	suite.Nil(updated.SectionID)
	suite.Empty(updated.TaskTags)
}

func (suite *ServiceTestSuite) TestAssignSection() {
	project := suite.createProject(alice)
	other := suite.createProject(alice)
	section := suite.createSection(alice, project.ID, "Kitchen")
	foreign := suite.createSection(alice, other.ID, "Garage")
	task := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Dishes"})

	suite.Require().NoError(suite.tasks.AssignSection(suite.ctx, alice, task.ID, &section.ID))
	detail, err := suite.tasks.Get(suite.ctx, alice, task.ID)
	suite.Require().NoError(err)
	suite.Equal(section.ID, *detail.SectionID)

	suite.ErrorIs(suite.tasks.AssignSection(suite.ctx, alice, task.ID, &foreign.ID), ErrSectionNotFound)

	suite.Require().NoError(suite.tasks.AssignSection(suite.ctx, alice, task.ID, nil))
	detail, err = suite.tasks.Get(suite.ctx, alice, task.ID)
	suite.Require().NoError(err)
	suite.Nil(detail.SectionID)
}

func (suite *ServiceTestSuite) TestToday_UsesLocalDay() {
	project := suite.createProject(alice)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	suite.Require().NoError(err)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, tokyo)
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "late", DeadlineAt: ptr(time.Date(2025, 3, 10, 23, 30, 0, 0, tokyo))})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "early", DeadlineAt: ptr(time.Date(2025, 3, 10, 0, 0, 0, 0, tokyo))})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "tomorrow", DeadlineAt: ptr(time.Date(2025, 3, 11, 0, 0, 0, 0, tokyo))})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "undated"})

	tasks, err := suite.tasks.Today(suite.ctx, alice, now)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal("early", tasks[0].Name)
	suite.Equal("late", tasks[1].Name)

	tasks, err = suite.tasks.Today(suite.ctx, bob, now)
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func (suite *ServiceTestSuite) TestCompleted_FiltersByProject() {
	project := suite.createProject(alice)
	other := suite.createProject(alice)
	a := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "a"})
	b := suite.createTask(alice, schemas.CreateTask{ProjectID: other.ID, Name: "b"})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "open"})

	for _, id := range []string{a.ID, b.ID} {
		_, err := suite.tasks.ToggleStatus(suite.ctx, alice, id)
		suite.Require().NoError(err)
	}

	params := utils.NewPaginationParams(1, 50)
	tasks, total, err := suite.tasks.Completed(suite.ctx, alice, nil, params)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(tasks, 2)

	tasks, total, err = suite.tasks.Completed(suite.ctx, alice, &project.ID, params)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(tasks, 1)
	suite.Equal("a", tasks[0].Name)

	_, _, err = suite.tasks.Completed(suite.ctx, bob, &project.ID, params)
	suite.ErrorIs(err, ErrProjectNotFound)
}

func (suite *ServiceTestSuite) TestSearch() {
	project := suite.createProject(alice)
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Buy MILK"})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Bread", Description: ptr("with milk")})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "Eggs"})

	tasks, err := suite.tasks.Search(suite.ctx, alice, "  milk ")
	suite.Require().NoError(err)
	suite.Len(tasks, 2)

	tasks, err = suite.tasks.Search(suite.ctx, alice, "   ")
	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)

	tasks, err = suite.tasks.Search(suite.ctx, bob, "milk")
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func (suite *ServiceTestSuite) TestWorkspaceList_CountsOpenTopLevel() {
	project := suite.createProject(alice)
	parent := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "a"})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, ParentTaskID: &parent.ID, Name: "sub"})
	done := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "b"})
	_, err := suite.tasks.ToggleStatus(suite.ctx, alice, done.ID)
	suite.Require().NoError(err)

	sidebar, err := suite.workspaces.List(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.Require().Len(sidebar.Workspaces, 1)
	suite.Require().Len(sidebar.Workspaces[0].Projects, 1)
	suite.Equal(int64(1), sidebar.OpenCounts[project.ID])

	sidebar, err = suite.workspaces.List(suite.ctx, bob)
	suite.Require().NoError(err)
	suite.Empty(sidebar.Workspaces)

	one, err := suite.workspaces.Get(suite.ctx, alice, project.WorkspaceID)
	suite.Require().NoError(err)
	suite.Len(one.Workspaces, 1)
}

func (suite *ServiceTestSuite) TestWorkspaceDelete_RemovesTree() {
	project := suite.createProject(alice)
	task := suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "a"})

	suite.Require().NoError(suite.workspaces.Delete(suite.ctx, alice, project.WorkspaceID))

	_, err := suite.tasks.Get(suite.ctx, alice, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
	_, err = suite.projects.Board(suite.ctx, alice, project.ID)
	suite.ErrorIs(err, ErrProjectNotFound)
}

func (suite *ServiceTestSuite) TestTags() {
	project := suite.createProject(alice)
	tag, err := suite.tags.Create(suite.ctx, alice, schemas.CreateTag{Name: "urgent", Color: ptr("#f00")})
	suite.Require().NoError(err)
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "a", TagIDs: []string{tag.ID}})
	suite.createTask(alice, schemas.CreateTask{ProjectID: project.ID, Name: "b"})

	list, err := suite.tags.List(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(int64(1), list[0].TaskCount)

	tasks, err := suite.tags.Tasks(suite.ctx, alice, tag.ID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal("a", tasks[0].Name)

	_, err = suite.tags.Tasks(suite.ctx, bob, tag.ID)
	suite.ErrorIs(err, ErrTagNotFound)

	var input schemas.UpdateTag
	suite.Require().NoError(json.Unmarshal([]byte(`{"color": null}`), &input))
	updated, err := suite.tags.Update(suite.ctx, alice, tag.ID, input)
	suite.Require().NoError(err)
	suite.Equal("urgent", updated.Name)
	suite.Nil(updated.Color)

	suite.Require().NoError(suite.tags.Delete(suite.ctx, alice, tag.ID))
	list, err = suite.tags.List(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.Empty(list)

	remaining, err := suite.tasks.Search(suite.ctx, alice, "a")
	suite.Require().NoError(err)
	suite.Len(remaining, 1)
}

func (suite *ServiceTestSuite) TestSuggestTasks_Sanitizes() {
	project := suite.createProject(alice)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.tasks.now = func() time.Time { return now }

	suite.suggester.tasks = []SuggestedTask{
		{Name: "   "},
		{Name: strings.Repeat("あ", 600), Effort: ptr(4)},
		{Name: " Call mom ", Description: ptr("  "), DeadlineAt: ptr(now.Add(-48 * time.Hour)), Effort: ptr(3)},
		{Name: "Pay rent", DeadlineAt: ptr(now.Add(-time.Hour))},
	}

	suggestions, err := suite.tasks.SuggestTasks(suite.ctx, alice, project.ID, schemas.SuggestTasks{Text: "stuff"})
	suite.Require().NoError(err)
	suite.Equal("stuff", suite.suggester.text)
	suite.Require().Len(suggestions, 3)

	suite.Len([]rune(suggestions[0].Name), 500)
	suite.Nil(suggestions[0].Effort)

	suite.Equal("Call mom", suggestions[1].Name)
	suite.Nil(suggestions[1].Description)
	suite.Nil(suggestions[1].DeadlineAt)
	suite.Equal(3, *suggestions[1].Effort)

	suite.NotNil(suggestions[2].DeadlineAt)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *ServiceTestSuite) TestSuggestTasks_Failures() {
	project := suite.createProject(alice)

	_, err := suite.tasks.SuggestTasks(suite.ctx, alice, project.ID, schemas.SuggestTasks{Text: "nothing"})
	suite.ErrorIs(err, ErrNoSuggestions)

	_, err = suite.tasks.SuggestTasks(suite.ctx, bob, project.ID, schemas.SuggestTasks{Text: "x"})
	suite.ErrorIs(err, ErrProjectNotFound)

	_, err = suite.tasks.SuggestTasks(suite.ctx, alice, project.ID, schemas.SuggestTasks{})
	suite.True(schemas.IsValidation(err))

	suite.tasks.suggester = nil
	_, err = suite.tasks.SuggestTasks(suite.ctx, alice, project.ID, schemas.SuggestTasks{Text: "x"})
	suite.ErrorIs(err, ErrSuggestionsDisabled)
}

func (suite *ServiceTestSuite) TestBackfillOwner() {
	suite.Require().NoError(suite.db.Create(&models.Workspace{Name: "Legacy"}).Error)
	suite.Require().NoError(suite.db.Create(&models.Tag{Name: "old"}).Error)
	suite.createProject(alice)

	result, err := BackfillOwner(suite.ctx, suite.wsRepo, suite.tagRepo, bob)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Workspaces)
	suite.Equal(int64(1), result.Tags)

	sidebar, err := suite.workspaces.List(suite.ctx, bob)
	suite.Require().NoError(err)
	suite.Len(sidebar.Workspaces, 1)

	_, err = BackfillOwner(suite.ctx, suite.wsRepo, suite.tagRepo, "")
	suite.ErrorIs(err, ErrOwnerRequired)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
