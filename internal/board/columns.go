package board

import (
	"slices"
	"time"

	"github.com/adanyl0v/go-kanban/internal/models"
)

type Column struct {
	Status string
	Title  string
	Cards  []Card
}

type Card struct {
	Task    models.Task
	Overdue bool
}

// Partition splits tasks into one column per known status, in board
// order. Within a column cards are sorted by deadline, earliest first,
// with undated tasks last; ties keep their order in tasks. Tasks with
// an unknown status are not shown.
func Partition(tasks []models.Task, now time.Time) []Column {
	columns := make([]Column, len(models.Statuses))
	index := make(map[string]int, len(models.Statuses))
	for i, status := range models.Statuses {
		columns[i] = Column{
			Status: status,
			Title:  models.StatusTitle(status),
			Cards:  []Card{},
		}
		index[status] = i
	}

	for _, task := range tasks {
		i, ok := index[task.Status]
		if !ok {
			continue
		}
		columns[i].Cards = append(columns[i].Cards, Card{
			Task:    task,
			Overdue: task.IsOverdue(now),
		})
	}

	for i := range columns {
		slices.SortStableFunc(columns[i].Cards, func(a, b Card) int {
			return compareDeadlines(a.Task.Deadline, b.Task.Deadline)
		})
	}
	return columns
}

func compareDeadlines(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
