package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	log "github.com/sirupsen/logrus"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/services"
)

// ShutdownFunc blocks until the process is asked to stop, then runs every
// operation within timeout and reports an exit code on the returned channel.
type ShutdownFunc func(timeout time.Duration, ops map[string]gfshutdown.Operation) <-chan int

// waitForSignal stops on SIGINT or SIGTERM.
func waitForSignal(timeout time.Duration, ops map[string]gfshutdown.Operation) <-chan int {
	return gfshutdown.GracefulShutdown(context.Background(), timeout, ops)
}

// ServeCommand runs the HTTP API until it is signalled to stop
type ServeCommand struct {
	config   *config.Config
	logger   *log.Logger
	newStore func() (sqlite.Repository, error)
	shutdown ShutdownFunc
}

// NewServeCommand creates a serve command that opens the store for the
// environment named by TODO_ENV.
func NewServeCommand(cfg *config.Config, logger *log.Logger) *ServeCommand {
	factory := config.NewRepositoryFactory(config.GetEnvironment(), cfg)
	return &ServeCommand{
		config:   cfg,
		logger:   logger,
		newStore: factory.CreateRepository,
		shutdown: waitForSignal,
	}
}

// Execute runs the command
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	store, err := c.newStore()
	if err != nil {
		return err
	}
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return fmt.Errorf("database not reachable: %w", err)
	}

	service := services.NewTaskServiceWithConfig(store, &c.config.Validation)
	e := api.New(c.config, service, store, c.logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(c.config.Server.Addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	c.logger.WithFields(log.Fields{
		"addr":     c.config.Server.Addr,
		"database": c.config.GetDatabasePath(),
	}).Info("server started")

	// Server first so in-flight requests finish before the store closes
	wait := c.shutdown(c.config.Server.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			err := e.Shutdown(ctx)
			if closeErr := store.Close(); err == nil {
				err = closeErr
			}
			return err
		},
	})

	select {
	case err := <-serverErr:
		store.Close()
		return fmt.Errorf("http server: %w", err)
	case code := <-wait:
		if code != 0 {
			return fmt.Errorf("shutdown completed with exit code %d", code)
		}
		c.logger.Info("shutdown completed")
		return nil
	}
}
