package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/adanyl0v/go-kanban/internal/board"
)

const deadlineLayout = "02.01 15:04"

func Render(w io.Writer, columns []board.Column) {
	for i, column := range columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", column.Title, len(column.Cards))
		if len(column.Cards) == 0 {
			fmt.Fprintln(w, "  no tasks")
			continue
		}
		for _, card := range column.Cards {
			fmt.Fprintf(w, "  * %s  [%s]\n", card.Task.Title, card.Task.ID)
			if card.Task.Description != "" {
				fmt.Fprintf(w, "    %s\n", card.Task.Description)
			}
			if card.Task.Deadline != nil {
				marker := ""
				if card.Overdue {
					marker = "  OVERDUE"
				}
				fmt.Fprintf(w, "    due %s%s\n", card.Task.Deadline.In(time.Local).Format(deadlineLayout), marker)
			}
		}
	}
}
