package cli

import (
	"context"

	"todo-list/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages the commands that run against a server
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry. Commands that take
// flags are registered with their zero options.
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("list", NewListCommand(app))
	registry.Register("add", NewAddCommand(app, AddOptions{}))
	registry.Register("edit", NewEditCommand(app, EditOptions{}))
	registry.Register("complete", NewStatusCommand(app, true))
	registry.Register("reopen", NewStatusCommand(app, false))
	registry.Register("rm", NewDeleteCommand(app))
	registry.Register("move", NewMoveCommand(app))
	registry.Register("categories", NewCategoriesCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: todo list [status=..] [priority=..] [category=..] or todo add \"text\" or todo edit ID [text] " +
		"or todo complete ID or todo reopen ID or todo rm ID or todo move ID OVER_ID or todo categories"
}
