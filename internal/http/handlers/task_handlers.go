package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/domain"
	"github.com/MohamedMedan1/Tasque-Api/internal/http/middleware"
)

// TaskHandlers handles task CRUD requests, always scoped to the caller.
type TaskHandlers struct {
	taskSvc domain.TaskService
}

// NewTaskHandlers creates new task handlers
func NewTaskHandlers(taskSvc domain.TaskService) *TaskHandlers {
	return &TaskHandlers{taskSvc: taskSvc}
}

// CreateTaskRequest represents task creation input
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=4,max=30"`
	Description string `json:"description" binding:"max=120"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=4,max=30"`
	Description *string `json:"description" binding:"omitempty,max=120"`
	IsCompleted *bool   `json:"isCompleted"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// List returns the caller's tasks with filtering, sorting, projection and
// pagination from the query string.
func (h *TaskHandlers) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tasks, err := h.taskSvc.List(c.Request.Context(), user.ID, parseTaskQuery(c))
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(tasks),
		"data":    tasks,
	})
}

// Get returns one of the caller's tasks.
func (h *TaskHandlers) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, err := paramID(c, "id")
	if err != nil {
		RenderError(c, err)
		return
	}

	task, err := h.taskSvc.Get(c.Request.Context(), user.ID, taskID)
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": task})
}

// Create adds a task owned by the caller.
func (h *TaskHandlers) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.Wrap(domain.KindValidation, err.Error(), err))
		return
	}

	user := middleware.CurrentUser(c)
	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}

	if err := h.taskSvc.Create(c.Request.Context(), user.ID, task); err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": task})
}

// Update patches one of the caller's tasks.
func (h *TaskHandlers) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.Wrap(domain.KindValidation, err.Error(), err))
		return
	}

	user := middleware.CurrentUser(c)
	taskID, err := paramID(c, "id")
	if err != nil {
		RenderError(c, err)
		return
	}

	task, err := h.taskSvc.Update(c.Request.Context(), user.ID, taskID, domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
	})
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": task})
}

// Delete removes one of the caller's tasks.
func (h *TaskHandlers) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, err := paramID(c, "id")
	if err != nil {
		RenderError(c, err)
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), user.ID, taskID); err != nil {
		RenderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Complete marks one of the caller's tasks as done.
func (h *TaskHandlers) Complete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, err := paramID(c, "taskId")
	if err != nil {
		RenderError(c, err)
		return
	}

	task, err := h.taskSvc.Complete(c.Request.Context(), user.ID, taskID)
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": task})
}

// Stats reports the caller's task totals and completion percentage.
func (h *TaskHandlers) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.taskSvc.Stats(c.Request.Context(), user.ID)
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}

func parseTaskQuery(c *gin.Context) domain.TaskQuery {
	q := domain.TaskQuery{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Priority:    c.Query("priority"),
		Sort:        c.Query("sort"),
		Select:      c.Query("select"),
	}

	if v := c.Query("isCompleted"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			q.IsCompleted = &b
		}
	}
	if v := c.Query("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := c.Query("limit"); v != "" {
		q.Limit, _ = strconv.Atoi(v)
	}
	return q
}
