package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/phrazzld/tasklist-api/internal/mocks"
	"github.com/phrazzld/tasklist-api/internal/service"
)

type taskListFixture struct {
	router    chi.Router
	listStore *mocks.MockTaskListStore
	taskStore *mocks.MockTaskStore
	tx        *mocks.MockTransactor
	// authUser is injected into every request context, standing in for the
	// authentication middleware.
	authUser uuid.UUID
}

func newTaskListRouter(t *testing.T) *taskListFixture {
	t.Helper()

	taskStore := mocks.NewMockTaskStore()
	listStore := mocks.NewMockTaskListStore()
	listStore.TaskSource = taskStore
	tx := &mocks.MockTransactor{}

	svc, err := service.NewTaskListService(listStore, taskStore, tx, slog.Default())
	require.NoError(t, err)

	fixture := &taskListFixture{
		listStore: listStore,
		taskStore: taskStore,
		tx:        tx,
		authUser:  uuid.New(),
	}

	handler := NewTaskListHandler(svc)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), shared.UserIDContextKey, fixture.authUser)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Route("/task-lists", func(r chi.Router) {
		r.Get("/", handler.ListTaskLists)
		r.Post("/", handler.CreateTaskList)
		r.Post("/with-tasks", handler.CreateTaskListWithTasks)
		r.Get("/{id}", handler.GetTaskList)
		r.Patch("/{id}", handler.UpdateTaskList)
		r.Delete("/{id}", handler.DeleteTaskList)
	})
	fixture.router = r
	return fixture
}

func decodeTaskListResponse(t *testing.T, rec *httptest.ResponseRecorder) TaskListResponse {
	t.Helper()

	var resp TaskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateTaskListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates an empty list for an explicit owner", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)
		owner := uuid.New()

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists", CreateTaskListRequest{
			Name:   "groceries",
			UserID: &owner,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeTaskListResponse(t, rec)
		assert.Equal(t, "groceries", resp.Name)
		require.NotNil(t, resp.UserID)
		assert.Equal(t, owner, *resp.UserID)
		assert.Empty(t, resp.Tasks)
		assert.Zero(t, resp.PercentageOfCompleteness)
	})

	t.Run("defaults the owner to the authenticated user", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists", CreateTaskListRequest{
			Name: "groceries",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeTaskListResponse(t, rec)
		require.NotNil(t, resp.UserID)
		assert.Equal(t, fixture.authUser, *resp.UserID)
	})

	t.Run("missing name is 400", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateTaskListWithTasksEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates the list and tasks in one transaction", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists/with-tasks",
			CreateTaskListWithTasksRequest{
				Name: "release checklist",
				Tasks: []TaskListTaskItem{
					{Description: "tag the release", Status: "completed"},
					{Description: "write the announcement"},
				},
			})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeTaskListResponse(t, rec)
		assert.Equal(t, "release checklist", resp.Name)
		require.Len(t, resp.Tasks, 2)
		assert.InDelta(t, 50.0, resp.PercentageOfCompleteness, 0.001)
		assert.Equal(t, 1, fixture.tx.Calls)

		// Every task belongs to the created list regardless of the payload.
		for _, task := range resp.Tasks {
			assert.Equal(t, resp.ID, task.TaskListID)
		}
	})

	t.Run("one invalid task rejects the whole request", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists/with-tasks",
			map[string]any{
				"name": "release checklist",
				"tasks": []map[string]any{
					{"description": "tag the release"},
					{"description": "bad one", "priority": "urgent"},
				},
			})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		lists, err := fixture.listStore.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, lists)
	})
}

func TestGetTaskListEndpoint(t *testing.T) {
	t.Parallel()

	seedListWithTasks := func(t *testing.T, fixture *taskListFixture) TaskListResponse {
		t.Helper()

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists/with-tasks",
			CreateTaskListWithTasksRequest{
				Name: "sprint board",
				Tasks: []TaskListTaskItem{
					{Description: "fix login bug", Priority: "high", Status: "completed"},
					{Description: "update deps", Priority: "low", Status: "pending"},
					{Description: "review PRs", Priority: "high", Status: "pending"},
					{Description: "retro notes", Priority: "medium", Status: "completed"},
				},
			})
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeTaskListResponse(t, rec)
	}

	t.Run("returns the full list", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)
		created := seedListWithTasks(t, fixture)

		rec := doJSON(t, fixture.router, http.MethodGet, "/task-lists/"+created.ID.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTaskListResponse(t, rec)
		assert.Len(t, resp.Tasks, 4)
		assert.InDelta(t, 50.0, resp.PercentageOfCompleteness, 0.001)
	})

	t.Run("filters narrow tasks but not the percentage", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)
		created := seedListWithTasks(t, fixture)

		rec := doJSON(t, fixture.router, http.MethodGet,
			"/task-lists/"+created.ID.String()+"?status=pending&priority=high", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTaskListResponse(t, rec)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "review PRs", resp.Tasks[0].Description)
		assert.InDelta(t, 50.0, resp.PercentageOfCompleteness, 0.001)
	})

	t.Run("unknown filter value is 400", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)
		created := seedListWithTasks(t, fixture)

		rec := doJSON(t, fixture.router, http.MethodGet,
			"/task-lists/"+created.ID.String()+"?status=done", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, fixture.router, http.MethodGet,
			"/task-lists/"+created.ID.String()+"?priority=urgent", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown list is 404", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodGet, "/task-lists/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateTaskListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("renames the list and returns the full view", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists/with-tasks",
			CreateTaskListWithTasksRequest{
				Name:  "old name",
				Tasks: []TaskListTaskItem{{Description: "only task", Status: "completed"}},
			})
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decodeTaskListResponse(t, rec)

		name := "new name"
		rec = doJSON(t, fixture.router, http.MethodPatch, "/task-lists/"+created.ID.String(),
			UpdateTaskListRequest{Name: &name})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTaskListResponse(t, rec)
		assert.Equal(t, "new name", resp.Name)
		assert.Len(t, resp.Tasks, 1)
		assert.InDelta(t, 100.0, resp.PercentageOfCompleteness, 0.001)
	})

	t.Run("unknown list is 404", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		name := "ghost"
		rec := doJSON(t, fixture.router, http.MethodPatch, "/task-lists/"+uuid.NewString(),
			UpdateTaskListRequest{Name: &name})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTaskListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("deletes and returns 204", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists", CreateTaskListRequest{
			Name: "short lived",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decodeTaskListResponse(t, rec)

		rec = doJSON(t, fixture.router, http.MethodDelete, "/task-lists/"+created.ID.String(), nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, fixture.router, http.MethodGet, "/task-lists/"+created.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown list is 404", func(t *testing.T) {
		t.Parallel()
		fixture := newTaskListRouter(t)

		rec := doJSON(t, fixture.router, http.MethodDelete, "/task-lists/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListTaskListsEndpoint(t *testing.T) {
	t.Parallel()

	fixture := newTaskListRouter(t)
	for _, name := range []string{"first", "second"} {
		rec := doJSON(t, fixture.router, http.MethodPost, "/task-lists", CreateTaskListRequest{Name: name})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, fixture.router, http.MethodGet, "/task-lists", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []TaskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Name)
	assert.Equal(t, "second", resp[1].Name)
}
