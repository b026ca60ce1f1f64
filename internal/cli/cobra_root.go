package cli

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo-list/internal/config"
	"todo-list/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
	logger *log.Logger
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{loader: loader}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A to-do list server and command-line client",
		Long: `todo keeps an ordered to-do list in SQLite and serves it over a JSON HTTP API.
The same binary drives a running server from the command line.

EXAMPLES:
  todo serve                                   # Start the API on :3001
  todo add "Buy milk" --priority high --due 2025-01-02 --category home
  todo list status=active priority=high        # Open high-priority tasks
  todo edit 3 "Buy oat milk" --clear-due       # Change text, drop the due date
  todo complete 3                              # Mark a task done
  todo move 3 1                                # Put task 3 where task 1 is
  todo rm 3                                    # Delete a task

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TODO_DB_DIR                  Database directory (default: ~/.todo)
    TODO_DB_FILENAME             Database filename (default: todos.db)
    TODO_DB_QUERY_TIMEOUT        Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT        Write timeout (default: 5s)

  Server Configuration:
    TODO_SERVER_ADDR             Listen address (default: :3001)
    TODO_SERVER_SHUTDOWN_TIMEOUT Graceful shutdown timeout (default: 30s)
    TODO_SERVER_BODY_LIMIT       Maximum request body (default: 1M)
    TODO_SERVER_ALLOW_ORIGINS    Comma-separated CORS origins (default: *)

  Validation Configuration:
    TODO_VALIDATION_TEXT_MAX     Maximum task text length (default: 500)
    TODO_VALIDATION_CATEGORY_MAX Maximum category length (default: 100)
    TODO_VALIDATION_STRICT_REORDER Reject reorders that are not a permutation (default: false)

  Logging Configuration:
    TODO_LOG_LEVEL               debug, info, warn or error (default: info)
    TODO_LOG_FORMAT              text or json (default: text)
    TODO_DEBUG                   Force debug logging

  Client Configuration:
    TODO_API_URL                 Server used by the client commands (default: http://localhost:3001)
    TODO_CLIENT_TIMEOUT          HTTP client timeout (default: 10s)

  Application Configuration:
    TODO_ENV                     development, testing or production (default: production)
    TODO_APP_TIMEOUT             Timeout of a client command (default: 60s)
    TODO_APP_VERBOSE             Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every
// command context.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Server configuration
	flags.String("addr", "", "Listen address (overrides TODO_SERVER_ADDR)")
	flags.Duration("shutdown-timeout", 0, "Graceful shutdown timeout (overrides TODO_SERVER_SHUTDOWN_TIMEOUT)")

	// Validation configuration
	flags.Int("text-max-length", 0, "Maximum task text length (overrides TODO_VALIDATION_TEXT_MAX)")
	flags.Bool("strict-reorder", false, "Reject reorders that are not a permutation (overrides TODO_VALIDATION_STRICT_REORDER)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, text or json (overrides TODO_LOG_FORMAT)")

	// Client configuration
	flags.String("api-url", "", "Server base URL (overrides TODO_API_URL)")
	flags.Duration("client-timeout", 0, "HTTP client timeout (overrides TODO_CLIENT_TIMEOUT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TODO_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the to-do list over HTTP until SIGINT or SIGTERM.

Routes:
  GET    /api/todos            List tasks in display order
  POST   /api/todos            Create a task
  PUT    /api/todos/reorder    Save a new order, body {"orderedIds": [...]}
  PUT    /api/todos/:id        Partially update a task
  DELETE /api/todos/:id        Delete a task
  GET    /healthz              Database health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.config, r.logger).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [status=all|active|completed] [priority=all|high|medium|low] [category=NAME]",
		Short: "List tasks",
		Long: `List tasks in display order with optional filters, followed by the number of open tasks.

Overdue open tasks are marked (overdue); open tasks due within three days are marked (due soon).

Examples:
  todo list                          # Every task
  todo list status=active            # Open tasks only
  todo list priority=high category=work`,
		RunE: r.run(func(app *App) Command { return NewListCommand(app) }),
	}

	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task",
		Long:  "Add a task at the end of the list. Priority defaults to medium.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run(func(app *App) Command { return NewAddCommand(app, addOpts) }),
	}
	addCmd.Flags().StringVarP(&addOpts.Priority, "priority", "p", "", "high, medium or low")
	addCmd.Flags().StringVarP(&addOpts.Due, "due", "d", "", "Due date as YYYY-MM-DD")
	addCmd.Flags().StringVarP(&addOpts.Category, "category", "c", "", "Category label")

	editCmd := &cobra.Command{
		Use:   "edit ID [text]",
		Short: "Edit a task",
		Long: `Change the fields of a task. Fields without a flag are left unchanged.

Examples:
  todo edit 3 "Call the plumber"
  todo edit 3 --priority low --category ""
  todo edit 3 --clear-due`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := EditOptions{
				Priority: changedString(cmd.Flags(), "priority"),
				Due:      changedString(cmd.Flags(), "due"),
				Category: changedString(cmd.Flags(), "category"),
			}
			opts.ClearDue, _ = cmd.Flags().GetBool("clear-due")
			return r.run(func(app *App) Command { return NewEditCommand(app, opts) })(cmd, args)
		},
	}
	editCmd.Flags().StringP("priority", "p", "", "high, medium or low")
	editCmd.Flags().StringP("due", "d", "", "Due date as YYYY-MM-DD")
	editCmd.Flags().Bool("clear-due", false, "Remove the due date")
	editCmd.Flags().StringP("category", "c", "", "Category label, empty to clear")

	completeCmd := &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewStatusCommand(app, true) }),
	}

	reopenCmd := &cobra.Command{
		Use:   "reopen ID",
		Short: "Mark a completed task open again",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewStatusCommand(app, false) }),
	}

	rmCmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long:    "Delete a task. This operation cannot be undone.",
		Args:    cobra.ExactArgs(1),
		RunE:    r.run(func(app *App) Command { return NewDeleteCommand(app) }),
	}

	moveCmd := &cobra.Command{
		Use:   "move ID OVER_ID",
		Short: "Move a task to another task's position",
		Long: `Move task ID to the position task OVER_ID holds and save the new order.
Tasks in between shift by one.`,
		Args: cobra.ExactArgs(2),
		RunE: r.run(func(app *App) Command { return NewMoveCommand(app) }),
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories in use",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) Command { return NewCategoriesCommand(app) }),
	}

	r.cmd.AddCommand(
		serveCmd,
		listCmd,
		addCmd,
		editCmd,
		completeCmd,
		reopenCmd,
		rmCmd,
		moveCmd,
		categoriesCmd,
	)
}

// run adapts a command handler to cobra: it bounds the command by the
// application timeout and turns failures into user messages.
func (r *RootCommand) run(newCommand func(app *App) Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()

		app := NewAppWithConfig(r.config, r.logger, cmd.OutOrStdout())
		if err := newCommand(app).Execute(ctx, args); err != nil {
			eh := NewErrorHandler()
			r.logger.WithError(err).WithField("code", eh.GetErrorCode(err)).Debug("command failed")
			return &ExitError{Code: eh.ExitCode(err), Err: eh.Handle(cmd.Name(), err)}
		}
		return nil
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig layers the command-line flags over the environment and builds
// the logger.
func (r *RootCommand) loadConfig() error {
	if r.loader == nil {
		return fmt.Errorf("configuration not initialized")
	}

	cfg, err := r.loader.LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return err
	}
	r.config = cfg

	r.logger = logging.NewWithWriter(cfg.Logging, r.cmd.ErrOrStderr())
	if cfg.Application.Verbose && !r.logger.IsLevelEnabled(log.DebugLevel) {
		r.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// overridesFromFlags collects the flags given on the command line
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()

	return &config.ConfigOverrides{
		DBDir:           changedString(flags, "db-dir"),
		DBFilename:      changedString(flags, "db-filename"),
		DBQueryTimeout:  changedDuration(flags, "db-query-timeout"),
		DBWriteTimeout:  changedDuration(flags, "db-write-timeout"),
		ServerAddr:      changedString(flags, "addr"),
		ShutdownTimeout: changedDuration(flags, "shutdown-timeout"),
		TextMaxLength:   changedInt(flags, "text-max-length"),
		StrictReorder:   changedBool(flags, "strict-reorder"),
		LogLevel:        changedString(flags, "log-level"),
		LogFormat:       changedString(flags, "log-format"),
		APIURL:          changedString(flags, "api-url"),
		ClientTimeout:   changedDuration(flags, "client-timeout"),
		Timeout:         changedDuration(flags, "app-timeout"),
		Verbose:         changedBool(flags, "verbose"),
	}
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

func changedDuration(flags *pflag.FlagSet, name string) *time.Duration {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetDuration(name)
	return &v
}

func changedInt(flags *pflag.FlagSet, name string) *int {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetInt(name)
	return &v
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}
