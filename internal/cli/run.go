package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/adanyl0v/go-kanban/internal/board"
)

// Execute loads the board, applies the invocation and prints the
// resulting columns to out.
func Execute(ctx context.Context, b *board.Board, inv Invocation, out io.Writer) error {
	err := b.Load(ctx)
	if err != nil {
		return err
	}

	switch inv.Command {
	case CommandAdd:
		params := board.AddParams{Title: *inv.Title, Deadline: inv.Deadline}
		if inv.Description != nil {
			params.Description = *inv.Description
		}
		task, err := b.Add(ctx, params)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "added %s\n\n", task.ID)
	case CommandMove:
		err = b.Move(ctx, inv.TaskID, inv.Status)
	case CommandEdit:
		err = edit(ctx, b, inv)
	case CommandDelete:
		err = b.Remove(ctx, inv.TaskID)
	}
	if err != nil {
		return err
	}

	Render(out, b.Columns(time.Now()))
	return nil
}

func edit(ctx context.Context, b *board.Board, inv Invocation) error {
	for _, task := range b.Tasks() {
		if task.ID != inv.TaskID {
			continue
		}

		params := board.EditParams{
			Title:       task.Title,
			Description: task.Description,
			Deadline:    task.Deadline,
		}
		if inv.Title != nil {
			params.Title = *inv.Title
		}
		if inv.Description != nil {
			params.Description = *inv.Description
		}
		if inv.Deadline != nil {
			params.Deadline = inv.Deadline
		}
		if inv.ClearDeadline {
			params.Deadline = nil
		}
		return b.Edit(ctx, inv.TaskID, params)
	}
	return board.ErrUnknownTask
}

// ExitCode maps an error returned by ParseInvocation or Execute to the
// process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}
	return ExitRequestFailed
}
