package models

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Statuses lists the board columns in display order.
var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}

// StatusTitle returns the column heading for status, or status itself
// when it is not one of the known values.
func StatusTitle(status string) string {
	switch status {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return status
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOverdue reports whether the task has a deadline before now and
// is not done yet.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil &&
		t.Status != StatusDone &&
		t.Deadline.Before(now)
}
