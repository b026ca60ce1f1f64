package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"todo-list/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	// Temporary directory keeps the test away from the home directory
	tmpDir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("TODO_DB_DIR", tmpDir)

	loader := NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := CreateRepository(cfg)
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(cfg.GetDatabasePath()); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	err = repo.CreateTask(context.Background(), &sqlite.Task{Text: "Test Task", Priority: "medium"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	tasks, err := repo.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("ListTasks() returned %d tasks, want 1", len(tasks))
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	if err != nil {
		t.Fatalf("CreateTestRepository() error = %v", err)
	}
	defer repo.Close()

	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Setenv("TODO_ENV", tt.value)
		if got := GetEnvironment(); got != tt.expected {
			t.Errorf("GetEnvironment() with TODO_ENV=%q = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestRepositoryFactory_Testing(t *testing.T) {
	factory := NewRepositoryFactory(Testing, NewConfig())

	repo, err := factory.CreateRepository()
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	ids, err := repo.TaskIDs(context.Background())
	if err != nil {
		t.Fatalf("TaskIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("fresh in-memory repository should be empty, got %v", ids)
	}
}

func TestRepositoryFactory_Production(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = t.TempDir()

	repo, err := NewRepositoryFactory(Production, cfg).CreateRepository()
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(cfg.GetDatabasePath()); err != nil {
		t.Errorf("database file not created at configured path: %v", err)
	}
}
