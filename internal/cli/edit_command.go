package cli

import (
	"context"
	"strings"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// EditOptions carries the flags of the edit command. Nil fields were not
// given on the command line.
type EditOptions struct {
	Priority *string
	Due      *string
	ClearDue bool
	Category *string
}

// EditCommand handles the edit command
type EditCommand struct {
	app  *App
	opts EditOptions
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, opts EditOptions) *EditCommand {
	return &EditCommand{app: app, opts: opts}
}

// Execute applies a partial update to the task named by args[0]. Any further
// args replace the text.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("id", "", "task id is required")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	patch, err := c.patch(args[1:])
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errors.NewInvalidInputError("edit", args[0], "nothing to change")
	}

	task, err := c.app.newBoard().Edit(ctx, id, patch)
	if err != nil {
		return err
	}

	c.app.printf("Updated task %d: %s\n", task.ID, task.Text)
	return nil
}

func (c *EditCommand) patch(textArgs []string) (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if len(textArgs) > 0 {
		text := strings.Join(textArgs, " ")
		if strings.TrimSpace(text) == "" {
			return patch, errors.NewInvalidInputError("text", text, "must not be blank")
		}
		patch.Text = domain.Some(text)
	}
	if c.opts.Priority != nil {
		patch.Priority = domain.Some(domain.Priority(*c.opts.Priority))
	}
	if c.opts.Category != nil {
		patch.Category = domain.Some(*c.opts.Category)
	}

	switch {
	case c.opts.ClearDue && c.opts.Due != nil:
		return patch, errors.NewInvalidInputError("due", *c.opts.Due, "cannot be combined with --clear-due")
	case c.opts.ClearDue:
		patch.DueDate = domain.Some[*domain.Date](nil)
	case c.opts.Due != nil:
		due, err := parseDueDate(*c.opts.Due)
		if err != nil {
			return patch, err
		}
		patch.DueDate = domain.Some(due)
	}

	return patch, nil
}
