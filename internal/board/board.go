// Package board keeps the client side view of the kanban board: the
// task list, its status columns and the actions a user can take on it.
package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-kanban/internal/models"
)

var (
	ErrEmptyTitle  = errors.New("task title is empty")
	ErrUnknownTask = errors.New("task is not on the board")
)

// API is the task store as seen by the board. *Client implements it.
type API interface {
	GetTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// Board holds the task list. Every action calls the API first and only
// touches the list after a successful response; failures are logged
// and leave the list as it was.
type Board struct {
	logger zerolog.Logger
	api    API

	mu    sync.Mutex
	tasks []*models.Task
}

func New(logger zerolog.Logger, api API) *Board {
	return &Board{
		logger: logger,
		api:    api,
	}
}

// Load replaces the task list with the store's.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.api.GetTasks(ctx)
	if err != nil {
		b.logger.Error().
			Err(err).
			Msg("failed to load tasks")
		return err
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()

	b.logger.Debug().
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return nil
}

// Tasks returns a snapshot of the list in load order.
func (b *Board) Tasks() []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks := make([]models.Task, len(b.tasks))
	for i, task := range b.tasks {
		tasks[i] = *task
	}
	return tasks
}

// Columns partitions the list into the status columns as of now.
func (b *Board) Columns(now time.Time) []Column {
	tasks := b.Tasks()
	return Partition(tasks, now)
}

type AddParams struct {
	Title       string
	Description string
	Deadline    *time.Time
}

// Add creates a task in the "to do" column. A blank title is rejected
// without calling the API.
func (b *Board) Add(ctx context.Context, params AddParams) (*models.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrEmptyTitle
	}

	task, err := b.api.CreateTask(ctx, &models.Task{
		Title:       params.Title,
		Description: params.Description,
		Status:      models.StatusTodo,
		Deadline:    params.Deadline,
	})
	if err != nil {
		b.logger.Error().
			Err(err).
			Msg("failed to add task")
		return nil, err
	}

	b.mu.Lock()
	b.tasks = append(b.tasks, task)
	b.mu.Unlock()

	b.logger.Info().
		Str("task_id", task.ID).
		Msg("added task")
	copied := *task
	return &copied, nil
}

// Move puts the task into the column for status, the way dropping a
// card onto a column does.
func (b *Board) Move(ctx context.Context, id, status string) error {
	return b.update(ctx, id, "failed to update task status", func(task *models.Task) {
		task.Status = status
	})
}

type EditParams struct {
	Title       string
	Description string
	Deadline    *time.Time
}

// Edit overwrites the title, description and deadline of the task.
func (b *Board) Edit(ctx context.Context, id string, params EditParams) error {
	return b.update(ctx, id, "failed to update task", func(task *models.Task) {
		task.Title = params.Title
		task.Description = params.Description
		task.Deadline = params.Deadline
	})
}

// Remove deletes the task from the store and then from the board.
func (b *Board) Remove(ctx context.Context, id string) error {
	err := b.api.DeleteTask(ctx, id)
	if err != nil {
		b.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}

	b.mu.Lock()
	for i, task := range b.tasks {
		if task.ID == id {
			b.tasks = append(b.tasks[:i:i], b.tasks[i+1:]...)
			break
		}
	}
	b.mu.Unlock()

	b.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

func (b *Board) update(ctx context.Context, id, failureMsg string, apply func(task *models.Task)) error {
	b.mu.Lock()
	var updated models.Task
	found := false
	for _, task := range b.tasks {
		if task.ID == id {
			updated = *task
			found = true
			break
		}
	}
	b.mu.Unlock()
	if !found {
		b.logger.Warn().
			Str("task_id", id).
			Msg("task is not on the board")
		return ErrUnknownTask
	}

	apply(&updated)
	err := b.api.UpdateTask(ctx, &updated)
	if err != nil {
		b.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg(failureMsg)
		return err
	}

	b.mu.Lock()
	for i, task := range b.tasks {
		if task.ID == id {
			b.tasks[i] = &updated
			break
		}
	}
	b.mu.Unlock()

	b.logger.Info().
		Str("task_id", id).
		Str("status", updated.Status).
		Msg("updated task")
	return nil
}
