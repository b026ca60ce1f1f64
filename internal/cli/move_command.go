package cli

import (
	"context"
	"fmt"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// MoveCommand handles the move command
type MoveCommand struct {
	app *App
}

// NewMoveCommand creates a new move command handler
func NewMoveCommand(app *App) *MoveCommand {
	return &MoveCommand{app: app}
}

// Execute moves task args[0] to the position task args[1] holds and saves the
// resulting order.
func (c *MoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("move", args, "usage: move ID OVER_ID")
	}
	activeID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	overID, err := parseTaskID(args[1])
	if err != nil {
		return err
	}

	board, err := c.app.loadBoard(ctx)
	if err != nil {
		return err
	}
	tasks := board.Tasks()
	for _, id := range []int64{activeID, overID} {
		if domain.IndexOf(tasks, id) < 0 {
			return errors.NewNotFoundError("task", fmt.Sprint(id))
		}
	}

	if err := board.Move(ctx, activeID, overID); err != nil {
		return err
	}

	c.app.logger.WithField("order", domain.TaskIDs(board.Tasks())).Debug("tasks reordered")
	c.app.printf("Moved task %d to position %d\n", activeID, domain.IndexOf(board.Tasks(), activeID)+1)
	return nil
}
