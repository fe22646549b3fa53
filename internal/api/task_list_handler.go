package api

import (
	"net/http"

	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/service"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskListHandler handles task-list-related API requests.
type TaskListHandler struct {
	taskListService service.TaskListService
}

// NewTaskListHandler creates a new TaskListHandler with the given
// dependencies.
func NewTaskListHandler(taskListService service.TaskListService) *TaskListHandler {
	return &TaskListHandler{taskListService: taskListService}
}

// CreateTaskList handles POST /task-lists.
func (h *TaskListHandler) CreateTaskList(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	owner := req.UserID
	if owner == nil {
		if userID, ok := getUserIDFromContext(r); ok {
			owner = &userID
		}
	}

	list, err := domain.NewTaskList(req.Name, owner)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task list data: "+err.Error())
		return
	}

	if err := h.taskListService.CreateTaskList(r.Context(), list); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	view := &service.TaskListView{
		ID:        list.ID,
		Name:      list.Name,
		UserID:    list.UserID,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskListResponse(view))
}

// CreateTaskListWithTasks handles POST /task-lists/with-tasks. The list and
// all of its tasks are created atomically; a single invalid task rejects the
// whole request.
func (h *TaskListHandler) CreateTaskListWithTasks(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskListWithTasksRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	owner := req.UserID
	if owner == nil {
		if userID, ok := getUserIDFromContext(r); ok {
			owner = &userID
		}
	}

	list, err := domain.NewTaskList(req.Name, owner)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task list data: "+err.Error())
		return
	}

	tasks := make([]*domain.Task, 0, len(req.Tasks))
	for _, item := range req.Tasks {
		task, err := domain.NewTask(
			item.UserID,
			list.ID,
			item.Description,
			domain.TaskPriority(item.Priority),
			domain.TaskStatus(item.Status),
		)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
			return
		}
		tasks = append(tasks, task)
	}

	view, err := h.taskListService.CreateTaskListWithTasks(r.Context(), list, tasks)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskListResponse(view))
}

// GetTaskList handles GET /task-lists/{id}. Optional status and priority
// query parameters narrow the returned tasks; the completeness percentage
// always reflects the full task set.
func (h *TaskListHandler) GetTaskList(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	filter, ok := parseTaskListFilter(w, r)
	if !ok {
		return
	}

	view, err := h.taskListService.GetTaskList(r.Context(), id, filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(view))
}

// parseTaskListFilter reads the status and priority query parameters. An
// unrecognized value gets a 400 response rather than silently matching
// nothing.
func parseTaskListFilter(w http.ResponseWriter, r *http.Request) (service.TaskListFilter, bool) {
	var filter service.TaskListFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !domain.IsValidTaskStatus(status) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
			return filter, false
		}
		filter.Status = &status
	}

	if raw := r.URL.Query().Get("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		if !domain.IsValidTaskPriority(priority) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid priority filter")
			return filter, false
		}
		filter.Priority = &priority
	}

	return filter, true
}

// ListTaskLists handles GET /task-lists.
func (h *TaskListHandler) ListTaskLists(w http.ResponseWriter, r *http.Request) {
	views, err := h.taskListService.ListAllTaskLists(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]TaskListResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, NewTaskListResponse(view))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// UpdateTaskList handles PATCH /task-lists/{id}.
func (h *TaskListHandler) UpdateTaskList(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := store.TaskListPatch{
		Name:   req.Name,
		UserID: req.UserID,
	}

	if _, err := h.taskListService.UpdateTaskList(r.Context(), id, patch); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	// Re-read for the full view: the update returns the list row without
	// its tasks.
	view, err := h.taskListService.GetTaskList(r.Context(), id, service.TaskListFilter{})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(view))
}

// DeleteTaskList handles DELETE /task-lists/{id}.
func (h *TaskListHandler) DeleteTaskList(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskListService.DeleteTaskList(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
