package cli

import (
	"context"

	"todo-list/internal/errors"
)

// DeleteCommand handles the rm command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes the task named by args[0]. This cannot be undone.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "exactly one task id is required")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if err := c.app.newBoard().Remove(ctx, id); err != nil {
		return err
	}

	c.app.printf("Deleted task %d\n", id)
	return nil
}
