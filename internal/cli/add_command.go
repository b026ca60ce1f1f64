package cli

import (
	"context"
	"strings"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// AddOptions carries the flags of the add command
type AddOptions struct {
	Priority string
	Due      string
	Category string
}

// AddCommand handles the add command
type AddCommand struct {
	app  *App
	opts AddOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts AddOptions) *AddCommand {
	return &AddCommand{app: app, opts: opts}
}

// Execute creates a task whose text is the space-joined args.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return errors.NewInvalidInputError("text", text, "must not be blank")
	}

	due, err := parseDueDate(c.opts.Due)
	if err != nil {
		return err
	}

	draft := domain.TaskDraft{
		Text:     text,
		Priority: domain.Priority(c.opts.Priority),
		DueDate:  due,
		Category: c.opts.Category,
	}

	task, err := c.app.newBoard().Add(ctx, draft)
	if err != nil {
		return err
	}

	c.app.printf("Added task %d: %s\n", task.ID, task.Text)
	return nil
}
