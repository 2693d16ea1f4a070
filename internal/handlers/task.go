package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskstack/user-task-api/internal/dto"
	"github.com/taskstack/user-task-api/internal/httpx"
	"github.com/taskstack/user-task-api/internal/services"
)

// TaskHandler coordinates the task HTTP handlers. Every operation
// trusts the caller-supplied user_id after a format check; there is no
// authenticated session in front of these routes.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// AddTask creates a task for a user. Remarks is not accepted here; a
// freshly created task always has it unset.
func (h *TaskHandler) AddTask(c *gin.Context) {
	type AddTaskRequest struct {
		UserID      string    `json:"user_id" binding:"required"`
		Title       string    `json:"title" binding:"required,min=3,max=255"`
		Description string    `json:"description" binding:"required,min=3,max=255"`
		Priority    string    `json:"priority" binding:"required,min=3,max=255"`
		Time        time.Time `json:"time" binding:"required"`
		Status      string    `json:"status" binding:"required,min=3,max=255"`
	}

	var req AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}
	if !isValidID(req.UserID) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Time:        req.Time,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httpx.OK(c, "Task created successfully", gin.H{
		"task": dto.ToTaskDTO(*task),
	})
}

// UpdateTask overwrites the whole task record. The target is keyed by
// task_id alone; user_id is format-checked and stored but does not
// constrain which task is replaced. Remarks is optional and an omitted
// value is written as empty.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		UserID      string    `json:"user_id" binding:"required"`
		TaskID      string    `json:"task_id" binding:"required"`
		Title       string    `json:"title" binding:"required,min=3,max=255"`
		Description string    `json:"description" binding:"required,min=3,max=255"`
		Priority    string    `json:"priority" binding:"required,min=3,max=255"`
		Time        time.Time `json:"time" binding:"required"`
		Remarks     string    `json:"remarks" binding:"omitempty,min=3,max=255"`
		Status      string    `json:"status" binding:"required,min=3,max=255"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}
	if !isValidID(req.UserID) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}
	if !isValidID(req.TaskID) {
		httpx.InvalidID(c, "Invalid task id")
		return
	}

	err := h.taskService.UpdateTask(req.TaskID, services.UpdateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Time:        req.Time,
		Remarks:     req.Remarks,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httpx.OK(c, "Task updated successfully", nil)
}

// DeleteTask removes a task scoped to its owner.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	type DeleteTaskRequest struct {
		UserID string `json:"user_id" binding:"required"`
		TaskID string `json:"task_id" binding:"required"`
	}

	var req DeleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}
	if !isValidID(req.UserID) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}
	if !isValidID(req.TaskID) {
		httpx.InvalidID(c, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(req.UserID, req.TaskID); err != nil {
		respondTaskError(c, err)
		return
	}

	httpx.OK(c, "Task deleted successfully", nil)
}

// ListTasks returns every task owned by a user. Both /getalltasks and
// /getallusertasks route here.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	type ListTasksRequest struct {
		UserID string `json:"user_id" binding:"required"`
	}

	var req ListTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}
	if !isValidID(req.UserID) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}

	tasks, err := h.taskService.ListTasks(req.UserID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httpx.OK(c, "Tasks fetched successfully", gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// GetTask returns a single task scoped to its owner.
func (h *TaskHandler) GetTask(c *gin.Context) {
	type GetTaskRequest struct {
		UserID string `json:"user_id" binding:"required"`
		TaskID string `json:"task_id" binding:"required"`
	}

	var req GetTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}
	if !isValidID(req.UserID) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}
	if !isValidID(req.TaskID) {
		httpx.InvalidID(c, "Invalid task id")
		return
	}

	task, err := h.taskService.GetTask(req.UserID, req.TaskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httpx.OK(c, "Task fetched successfully", gin.H{
		"task": dto.ToTaskDTO(*task),
	})
}

// GiveRemarks sets the remarks on a task. The lookup uses task_id
// alone; user_id passes a format check only.
func (h *TaskHandler) GiveRemarks(c *gin.Context) {
	type GiveRemarksRequest struct {
		UserID  string `json:"user_id" binding:"required"`
		TaskID  string `json:"task_id" binding:"required"`
		Remarks string `json:"remarks" binding:"required,min=3,max=255"`
	}

	var req GiveRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}
	if !isValidID(req.UserID) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}
	if !isValidID(req.TaskID) {
		httpx.InvalidID(c, "Invalid task id")
		return
	}

	if err := h.taskService.GiveRemarks(req.UserID, req.TaskID, req.Remarks); err != nil {
		respondTaskError(c, err)
		return
	}

	httpx.OK(c, "Remarks given successfully", nil)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		httpx.NotFound(c, "Task not found")
	default:
		httpx.Internal(c, "Internal server error", err)
	}
}
