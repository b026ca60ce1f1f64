package cli

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// StatusCommand marks a task completed or open again
type StatusCommand struct {
	app       *App
	completed bool
}

// NewStatusCommand creates the complete (completed=true) or reopen handler
func NewStatusCommand(app *App, completed bool) *StatusCommand {
	return &StatusCommand{app: app, completed: completed}
}

// Execute runs the command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.app.newBoard().Edit(ctx, id, domain.TaskPatch{Completed: domain.Some(c.completed)})
	if err != nil {
		return err
	}

	verb := "Reopened"
	if c.completed {
		verb = "Completed"
	}
	c.app.printf("%s task %d: %s\n", verb, task.ID, task.Text)
	return nil
}
