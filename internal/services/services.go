package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/go-kanban/internal/models"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskFieldTooLong  = errors.New("task field too long")
	ErrTaskFieldRequired = errors.New("task field required")
)

// DB is the subset of *pgxpool.Pool used by the services.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TaskService interface {
	// GetTasks returns every task ordered by creation time. An empty
	// table yields an empty slice, not an error.
	GetTasks(ctx context.Context) ([]*models.Task, error)

	// CreateTask stores a new task with a fresh ID and equal creation
	// and update timestamps. An empty status defaults to models.StatusTodo.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask overwrites the title, description, status and deadline
	// of the task and refreshes its update timestamp.
	//
	// It returns ErrTaskNotFound if the task with the given ID doesn't
	// exist, leaving the table unchanged.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes the task with the given ID or returns
	// ErrTaskNotFound.
	DeleteTask(ctx context.Context, id string) error
}

type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
	Deadline    *time.Time
}

type UpdateTaskParams struct {
	ID          string
	Title       string
	Description string
	Status      string
	Deadline    *time.Time
}
