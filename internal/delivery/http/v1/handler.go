package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-kanban/internal/services"
)

type Handler interface {
	HandleRequestLogger(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts the task API under /api.
func RegisterRoutes(router gin.IRouter, h Handler) {
	api := router.Group("/api", h.HandleRequestLogger)

	tasks := api.Group("/tasks")
	tasks.GET("", h.HandleGetTasks)
	tasks.POST("", h.HandleCreateTask)
	tasks.PUT("/:id", h.HandleUpdateTask)
	tasks.DELETE("/:id", h.HandleDeleteTask)
}
