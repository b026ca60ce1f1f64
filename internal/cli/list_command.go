package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints the tasks matching the key=value filters in args, followed by
// the number of open tasks on the whole list.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter, err := parseFilter(args)
	if err != nil {
		return err
	}

	board, err := c.app.loadBoard(ctx)
	if err != nil {
		return err
	}

	tasks := board.Filtered(filter)
	if len(tasks) == 0 {
		c.app.printf("No tasks found\n")
	} else if err := printTasks(c.app.out, tasks, today()); err != nil {
		return err
	}
	c.app.printf("%d remaining\n", board.Remaining())
	return nil
}

// parseFilter reads status=, priority= and category= arguments.
func parseFilter(args []string) (domain.Filter, error) {
	filter := domain.Filter{Status: domain.StatusAll}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return filter, errors.NewInvalidInputError("filter", arg, "expected key=value")
		}
		switch key {
		case "status":
			switch domain.StatusFilter(value) {
			case domain.StatusAll, domain.StatusActive, domain.StatusCompleted:
				filter.Status = domain.StatusFilter(value)
			default:
				return filter, errors.NewInvalidInputError("status", value, "must be one of all, active, completed")
			}
		case "priority":
			if _, ok := domain.ParsePriority(value); !ok && value != domain.FilterAll {
				return filter, errors.NewInvalidInputError("priority", value, "must be one of all, high, medium, low")
			}
			filter.Priority = value
		case "category":
			filter.Category = value
		default:
			return filter, errors.NewInvalidInputError("filter", key, "unknown filter")
		}
	}
	return filter, nil
}

// printTasks renders tasks as an aligned table. The tabwriter buffers every
// row, so write failures surface from Flush.
func printTasks(out io.Writer, tasks []domain.Task, now domain.Date) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tPRIORITY\tDUE\tCATEGORY\tTEXT")
	for _, t := range tasks {
		fmt.Fprint(w, formatRow(t, now))
	}
	return w.Flush()
}

func formatRow(t domain.Task, now domain.Date) string {
	done := "[ ]"
	if t.Completed {
		done = "[x]"
	}

	due := "-"
	if t.DueDate != nil {
		due = t.DueDate.String()
		switch {
		case t.IsOverdue(now):
			due += " (overdue)"
		case t.IsDueSoon(now):
			due += " (due soon)"
		}
	}

	category := t.Category
	if category == "" {
		category = "-"
	}

	return strings.Join([]string{
		formatID(t.ID), done, string(t.Priority), due, category, t.Text,
	}, "\t") + "\n"
}
