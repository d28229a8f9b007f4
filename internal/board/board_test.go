package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-kanban/internal/models"
)

// fakeAPI is an in-memory task store that counts calls and can be
// told to fail.
type fakeAPI struct {
	tasks []*models.Task
	err   error
	calls int
}

func (f *fakeAPI) GetTasks(context.Context) ([]*models.Task, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	tasks := make([]*models.Task, len(f.tasks))
	for i, task := range f.tasks {
		copied := *task
		tasks[i] = &copied
	}
	return tasks, nil
}

func (f *fakeAPI) CreateTask(_ context.Context, task *models.Task) (*models.Task, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now().UTC()
	created := *task
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now
	f.tasks = append(f.tasks, &created)
	copied := created
	return &copied, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, task *models.Task) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for i, stored := range f.tasks {
		if stored.ID == task.ID {
			copied := *task
			f.tasks[i] = &copied
			return nil
		}
	}
	return &APIError{Op: "update task", StatusCode: 404}
}

func (f *fakeAPI) DeleteTask(_ context.Context, id string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for i, stored := range f.tasks {
		if stored.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &APIError{Op: "delete task", StatusCode: 404}
}

func newTestBoard(t *testing.T, api *fakeAPI) *Board {
	t.Helper()
	b := New(zerolog.Nop(), api)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestAdd_CreatesTodoTaskWithID(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)

	task, err := b.Add(context.Background(), AddParams{Title: "Write tests"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	if task.Status != models.StatusTodo {
		t.Fatalf("expected status %q, got %q", models.StatusTodo, task.Status)
	}
	if got := b.Tasks(); len(got) != 1 || got[0].ID != task.ID {
		t.Fatalf("expected task on the board, got %+v", got)
	}
}

func TestAdd_BlankTitleSendsNothing(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)
	callsAfterLoad := api.calls

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := b.Add(context.Background(), AddParams{Title: title}); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("Add(%q): expected ErrEmptyTitle, got %v", title, err)
		}
	}
	if api.calls != callsAfterLoad {
		t.Fatalf("expected no API calls, got %d", api.calls-callsAfterLoad)
	}
}

func TestMove_PersistsAndShowsInColumnAfterReload(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)
	task, err := b.Add(context.Background(), AddParams{Title: "Drag me"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := b.Move(context.Background(), task.ID, models.StatusInProgress); err != nil {
		t.Fatalf("Move: %v", err)
	}

	reloaded := newTestBoard(t, api)
	columns := reloaded.Columns(time.Now())
	if len(columns[1].Cards) != 1 || columns[1].Cards[0].Task.ID != task.ID {
		t.Fatalf("expected task in %q column, got %+v", columns[1].Title, columns)
	}
	if len(columns[0].Cards) != 0 {
		t.Fatalf("expected empty %q column, got %+v", columns[0].Title, columns[0].Cards)
	}
}

func TestMove_UnknownTask(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)
	callsAfterLoad := api.calls

	if err := b.Move(context.Background(), "missing", models.StatusDone); !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask, got %v", err)
	}
	if api.calls != callsAfterLoad {
		t.Fatalf("expected no API calls")
	}
}

func TestEdit_OverwritesFieldsKeepsStatus(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)
	task, _ := b.Add(context.Background(), AddParams{Title: "old"})
	_ = b.Move(context.Background(), task.ID, models.StatusDone)

	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	err := b.Edit(context.Background(), task.ID, EditParams{
		Title:       "new",
		Description: "details",
		Deadline:    &deadline,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	got := b.Tasks()[0]
	if got.Title != "new" || got.Description != "details" || got.Status != models.StatusDone {
		t.Fatalf("unexpected task after edit: %+v", got)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Fatalf("expected deadline %v, got %v", deadline, got.Deadline)
	}
}

func TestRemove_RepeatedRemoveReportsNotFound(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)
	task, _ := b.Add(context.Background(), AddParams{Title: "bye"})

	if err := b.Remove(context.Background(), task.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(b.Tasks()) != 0 || len(api.tasks) != 0 {
		t.Fatalf("expected task removed from board and store")
	}

	var apiErr *APIError
	if err := b.Remove(context.Background(), task.ID); !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}

func TestFailedRequestsLeaveStateUnchanged(t *testing.T) {
	api := &fakeAPI{}
	b := newTestBoard(t, api)
	task, _ := b.Add(context.Background(), AddParams{Title: "stay"})
	before := b.Tasks()

	api.err = errors.New("connection refused")
	if _, err := b.Add(context.Background(), AddParams{Title: "lost"}); err == nil {
		t.Fatalf("expected Add to fail")
	}
	if err := b.Move(context.Background(), task.ID, models.StatusDone); err == nil {
		t.Fatalf("expected Move to fail")
	}
	if err := b.Edit(context.Background(), task.ID, EditParams{Title: "changed"}); err == nil {
		t.Fatalf("expected Edit to fail")
	}
	if err := b.Remove(context.Background(), task.ID); err == nil {
		t.Fatalf("expected Remove to fail")
	}
	if err := b.Load(context.Background()); err == nil {
		t.Fatalf("expected Load to fail")
	}

	after := b.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("state changed after failures: before=%+v after=%+v", before, after)
	}
}
