package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"todo-list/internal/client"
	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// today is a variable that can be replaced in tests
var today = domain.Today

// App represents the main CLI application
type App struct {
	api      client.API
	config   *config.Config
	logger   *log.Logger
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api client.API, cfg *config.Config, logger *log.Logger, out io.Writer) *App {
	app := &App{
		api:    api,
		config: cfg,
		logger: logger,
		out:    out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// NewAppWithConfig creates an application that talks to the server named in
// cfg.Client.
func NewAppWithConfig(cfg *config.Config, logger *log.Logger, out io.Writer) *App {
	return NewApp(client.New(cfg.Client.BaseURL, cfg.Client.Timeout), cfg, logger, out)
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

// newBoard returns a board backed by the app's API without fetching anything.
func (a *App) newBoard() *client.Board {
	return client.NewBoard(a.api, a.logger)
}

// loadBoard returns a board holding the server's current list.
func (a *App) loadBoard(ctx context.Context) (*client.Board, error) {
	board := a.newBoard()
	if err := board.Load(ctx); err != nil {
		return nil, err
	}
	return board, nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// parseTaskID parses a task id argument.
func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", s, "must be a positive integer")
	}
	return id, nil
}

// parseDueDate parses a --due value. An empty string means no due date.
func parseDueDate(s string) (*domain.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, errors.NewInvalidInputError("due", s, "expected YYYY-MM-DD")
	}
	return &d, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
