package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adanyl0v/go-kanban/internal/models"
)

// APIError is returned for any response outside the 2xx range.
type APIError struct {
	Op         string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to %s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

type taskPayload struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"createdAt,omitzero"`
	UpdatedAt   time.Time  `json:"updatedAt,omitzero"`
}

func newTaskPayload(task *models.Task) taskPayload {
	return taskPayload{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Deadline:    task.Deadline,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (p taskPayload) task() *models.Task {
	return &models.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Client talks to the task REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetTasks(ctx context.Context) ([]*models.Task, error) {
	var payloads []taskPayload
	err := c.do(ctx, "fetch tasks", http.MethodGet, "/api/tasks", nil, &payloads)
	if err != nil {
		return nil, err
	}

	tasks := make([]*models.Task, len(payloads))
	for i, p := range payloads {
		tasks[i] = p.task()
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	body := newTaskPayload(task)
	body.ID = ""
	body.CreatedAt = time.Time{}
	body.UpdatedAt = time.Time{}

	var created taskPayload
	err := c.do(ctx, "create task", http.MethodPost, "/api/tasks", body, &created)
	if err != nil {
		return nil, err
	}
	return created.task(), nil
}

func (c *Client) UpdateTask(ctx context.Context, task *models.Task) error {
	return c.do(ctx, "update task", http.MethodPut, "/api/tasks/"+url.PathEscape(task.ID), newTaskPayload(task), nil)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, "delete task", http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Op: op, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to %s: decode response: %w", op, err)
	}
	return nil
}
