package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-kanban/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     DB
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	db DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       title,
       description,
       status,
       deadline,
       created_at,
       updated_at
FROM tasks
ORDER BY created_at, id
`
	rows, err := s.db.Query(ctx, selectTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := new(models.Task)
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Deadline,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}

	now := s.now()
	task := &models.Task{
		ID:          taskUUID.String(),
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		Deadline:    params.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}

	const insertTaskQuery = `
INSERT INTO tasks (id,
                   title,
                   description,
                   status,
                   deadline,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err = s.db.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.Deadline,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, classifyPgError(err)
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("status", task.Status).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	if !isTaskID(params.ID) {
		s.logger.Warn().
			Str("task_id", params.ID).
			Msg("malformed task id")
		return nil, ErrTaskNotFound
	}

	task := &models.Task{
		ID:          params.ID,
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		Deadline:    params.Deadline,
		UpdatedAt:   s.now(),
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    status = $3,
    deadline = $4,
    updated_at = $5
WHERE id = $6
RETURNING created_at
`
	err := s.db.QueryRow(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.Status,
		task.Deadline,
		task.UpdatedAt,
		task.ID,
	).Scan(&task.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("task_id", task.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task")
		return nil, classifyPgError(err)
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("status", task.Status).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	if !isTaskID(id) {
		s.logger.Warn().
			Str("task_id", id).
			Msg("malformed task id")
		return ErrTaskNotFound
	}

	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := s.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

// isTaskID reports whether id can match a row at all. Anything that
// is not a UUID would only make postgres fail the cast.
func isTaskID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: %s", ErrTaskFieldTooLong, pgErr.Message)
	case pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", ErrTaskFieldRequired, pgErr.ColumnName)
	default:
		return err
	}
}
