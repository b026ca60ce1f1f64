package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"todo-list/internal/domain"
)

const todosPath = "/api/todos"

// HTTPError is returned for any non-2xx response
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client talks to the todo HTTP API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL with a per-request timeout
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a client using hc for transport
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// ListTasks fetches every task in display order
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	if err := c.do(ctx, http.MethodGet, todosPath, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the stored record
func (c *Client) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPost, todosPath, draft, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask sends the set fields of patch and returns the stored record
func (c *Client) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", todosPath, id), patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", todosPath, id), nil, nil)
}

// ReorderTasks sends the full display order
func (c *Client) ReorderTasks(ctx context.Context, orderedIDs []int64) error {
	if orderedIDs == nil {
		orderedIDs = []int64{}
	}
	body := map[string][]int64{"orderedIds": orderedIDs}
	return c.do(ctx, http.MethodPut, todosPath+"/reorder", body, nil)
}

// Health checks the server's health endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := sonic.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if sonic.Unmarshal(data, &payload) == nil {
			httpErr.Message = payload.Error
		}
		return httpErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
