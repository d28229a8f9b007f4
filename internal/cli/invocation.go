package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adanyl0v/go-kanban/internal/models"
)

const (
	ExitSuccess           = 0
	ExitRequestFailed     = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
)

const (
	CommandList   = "list"
	CommandAdd    = "add"
	CommandMove   = "move"
	CommandEdit   = "edit"
	CommandDelete = "delete"
)

const usage = `usage: kanban-board <command> [flags]

commands:
  list
  add    -title TITLE [-description TEXT] [-deadline RFC3339]
  move   ID todo|in_progress|done
  edit   ID [-title TITLE] [-description TEXT] [-deadline RFC3339 | -clear-deadline]
  delete ID`

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{
		ExitCode: ExitInvalidInvocation,
		Message:  fmt.Sprintf(format, args...) + "\n" + usage,
	}
}

// Invocation is one parsed board command. Optional edit fields are nil
// when the flag was not given, so the task keeps its current value.
type Invocation struct {
	Command       string
	TaskID        string
	Status        string
	Title         *string
	Description   *string
	Deadline      *time.Time
	ClearDeadline bool
}

func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, invalidInvocationf("missing command")
	}

	inv := Invocation{Command: args[0]}
	rest := args[1:]
	switch inv.Command {
	case CommandList:
		if len(rest) != 0 {
			return Invocation{}, invalidInvocationf("list takes no arguments")
		}
	case CommandAdd:
		if err := parseFields(&inv, rest, false); err != nil {
			return Invocation{}, err
		}
		if inv.Title == nil || strings.TrimSpace(*inv.Title) == "" {
			return Invocation{}, invalidInvocationf("add requires a non-empty -title")
		}
	case CommandMove:
		if len(rest) != 2 {
			return Invocation{}, invalidInvocationf("move takes a task id and a status")
		}
		inv.TaskID, inv.Status = rest[0], rest[1]
		if !isKnownStatus(inv.Status) {
			return Invocation{}, invalidInvocationf("unknown status %q", inv.Status)
		}
	case CommandEdit:
		if len(rest) == 0 {
			return Invocation{}, invalidInvocationf("edit takes a task id")
		}
		inv.TaskID = rest[0]
		if err := parseFields(&inv, rest[1:], true); err != nil {
			return Invocation{}, err
		}
		if inv.Title != nil && strings.TrimSpace(*inv.Title) == "" {
			return Invocation{}, invalidInvocationf("-title must not be empty")
		}
	case CommandDelete:
		if len(rest) != 1 {
			return Invocation{}, invalidInvocationf("delete takes a task id")
		}
		inv.TaskID = rest[0]
	default:
		return Invocation{}, invalidInvocationf("unknown command %q", inv.Command)
	}
	return inv, nil
}

func parseFields(inv *Invocation, args []string, allowClear bool) error {
	fs := flag.NewFlagSet(inv.Command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	deadline := fs.String("deadline", "", "deadline, RFC3339")
	var clearDeadline *bool
	if allowClear {
		clearDeadline = fs.Bool("clear-deadline", false, "remove the deadline")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return invalidInvocationf("help requested")
		}
		return invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return invalidInvocationf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			inv.Title = title
		case "description":
			inv.Description = description
		}
	})

	if *deadline != "" {
		t, err := time.Parse(time.RFC3339, *deadline)
		if err != nil {
			return invalidInvocationf("invalid -deadline %q: want RFC3339", *deadline)
		}
		t = t.UTC()
		inv.Deadline = &t
	}
	if clearDeadline != nil && *clearDeadline {
		if inv.Deadline != nil {
			return invalidInvocationf("-deadline and -clear-deadline are mutually exclusive")
		}
		inv.ClearDeadline = true
	}
	return nil
}

func isKnownStatus(status string) bool {
	for _, known := range models.Statuses {
		if status == known {
			return true
		}
	}
	return false
}
