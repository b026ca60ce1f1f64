package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/client"
	"todo-list/internal/config"
	"todo-list/internal/domain"
)

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, *RootCommand, error) {
	t.Helper()

	root := NewRootCommand(config.NewLoader())
	out := &bytes.Buffer{}
	root.cmd.SetOut(out)
	root.cmd.SetErr(&bytes.Buffer{})
	root.cmd.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), root, err
}

func TestRootCommand_ClientCommands(t *testing.T) {
	server := newTestServer(t)
	api := client.New(server.URL, 5*time.Second)
	url := []string{"--api-url", server.URL}

	got, _, err := execute(t, append(url, "add", "Buy milk", "--priority", "high", "--due", "2025-01-02", "-c", "home")...)
	require.NoError(t, err)
	assert.Equal(t, "Added task 1: Buy milk\n", got)

	_, _, err = execute(t, append(url, "add", "Walk", "dog")...)
	require.NoError(t, err)

	_, _, err = execute(t, append(url, "edit", "1", "--category", "", "--clear-due")...)
	require.NoError(t, err)

	tasks, err := api.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "", tasks[0].Category)
	assert.Nil(t, tasks[0].DueDate)
	assert.Equal(t, "Walk dog", tasks[1].Text)

	_, _, err = execute(t, append(url, "move", "2", "1")...)
	require.NoError(t, err)

	_, _, err = execute(t, append(url, "complete", "1")...)
	require.NoError(t, err)

	got, _, err = execute(t, append(url, "list", "status=active")...)
	require.NoError(t, err)
	assert.Contains(t, got, "Walk dog")
	assert.NotContains(t, got, "Buy milk")
	assert.Contains(t, got, "1 remaining")

	_, _, err = execute(t, append(url, "delete", "2")...)
	require.NoError(t, err)

	tasks, err = api.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, domain.TaskIDs(tasks))
}

func TestRootCommand_ErrorMessages(t *testing.T) {
	server := newTestServer(t)
	url := []string{"--api-url", server.URL}

	_, _, err := execute(t, append(url, "rm", "7")...)
	require.Error(t, err)
	assert.Equal(t, "failed to rm: task not found: 7", err.Error())

	_, _, err = execute(t, append(url, "add", "x", "--priority", "urgent")...)
	require.Error(t, err)
	assert.Equal(t, "failed to add: priority has invalid value: must be one of high, medium, low", err.Error())

	_, _, err = execute(t, append(url, "complete")...)
	require.Error(t, err)

	_, _, err = execute(t, append(url, "list", "colour=red")...)
	require.Error(t, err)
	assert.Equal(t, "failed to list: invalid input for filter: unknown filter", err.Error())
}

func TestRootCommand_ExitCodes(t *testing.T) {
	server := newTestServer(t)
	url := []string{"--api-url", server.URL}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown task", []string{"rm", "7"}, ExitNotFound},
		{"move unknown task", []string{"move", "7", "1"}, ExitNotFound},
		{"blank text", []string{"add", "   "}, ExitUsage},
		{"rejected by server", []string{"add", "x", "--priority", "urgent"}, ExitUsage},
		{"bad filter", []string{"list", "colour=red"}, ExitUsage},
		{"bad due date", []string{"add", "x", "--due", "tomorrow"}, ExitUsage},
		{"missing argument", []string{"complete"}, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(url, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.want, ExitCodeOf(err), err.Error())
		})
	}
}

func TestRootCommand_ConfigOverrides(t *testing.T) {
	t.Setenv("TODO_APP_TIMEOUT", "45s")
	t.Setenv("TODO_LOG_LEVEL", "warn")
	server := newTestServer(t)

	_, root, err := execute(t,
		"--api-url", server.URL,
		"--strict-reorder",
		"--text-max-length", "80",
		"--addr", "127.0.0.1:9999",
		"--db-dir", t.TempDir(),
		"--client-timeout", "3s",
		"-v",
		"categories",
	)
	require.NoError(t, err)

	cfg := root.config
	require.NotNil(t, cfg)
	assert.Equal(t, server.URL, cfg.Client.BaseURL)
	assert.True(t, cfg.Validation.StrictReorder)
	assert.Equal(t, 80, cfg.Validation.TextMaxLength)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 45*time.Second, cfg.Application.Timeout)
	assert.Equal(t, 45*time.Second, root.getAppTimeout())
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, "debug", root.logger.GetLevel().String())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "categories")
	require.Error(t, err)

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "logging.format", cfgErr.Field)
}

func TestRootCommand_ArgumentChecks(t *testing.T) {
	tests := [][]string{
		{"add"},
		{"move", "1"},
		{"rm"},
		{"serve", "extra"},
		{"categories", "extra"},
	}
	for _, args := range tests {
		_, _, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}
