package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-kanban/internal/models"
	"github.com/adanyl0v/go-kanban/internal/services"
)

type getTaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Deadline:    task.Deadline,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// taskRequest is the body of both create and replace. Client supplied
// id and timestamps are not part of it and are dropped while binding.
type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.GetTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, newServiceError(err))
		return
	}

	response := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newGetTaskResponse(task)
	}

	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    req.Deadline,
	})
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.Header("Location", "/api/tasks/"+task.ID)
	c.JSON(http.StatusCreated, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	_, err = h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    req.Deadline,
	})
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	err := h.tasks.DeleteTask(c, c.Param("id"))
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
