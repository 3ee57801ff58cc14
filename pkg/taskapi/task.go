package taskapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FetchTasks returns all tasks in the order the server sent them.
func (c *Client) FetchTasks(ctx context.Context) ([]Task, error) {
	req, err := c.newRequest(ctx, http.MethodGet, TasksPath, nil)
	if err != nil {
		return nil, newError(KindFetch, 0, err)
	}

	resp, err := c.do(req, KindFetch)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tasks []Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks response: %w", err)
	}

	return tasks, nil
}

// CreateTask creates a new task. The input is sent as given; no validation
// is done locally.
func (c *Client) CreateTask(ctx context.Context, input NewTaskInput) (*Task, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, TasksPath, input)
	if err != nil {
		return nil, newError(KindCreate, 0, err)
	}

	resp, err := c.do(req, KindCreate)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode task response: %w", err)
	}

	return &task, nil
}

// DeleteTask deletes the task with the given ID. The response body is not
// read.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, taskPath(id), nil)
	if err != nil {
		return newError(KindDelete, 0, err)
	}

	resp, err := c.do(req, KindDelete)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// ToggleTask sets the completed flag of a task and returns the decoded
// response. Servers may answer with a partial body such as
// {"completed":true}, in which case only Completed is populated.
func (c *Client) ToggleTask(ctx context.Context, id string, completed bool) (*Task, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPatch, taskPath(id), ToggleInput{Completed: completed})
	if err != nil {
		return nil, newError(KindUpdate, 0, err)
	}

	resp, err := c.do(req, KindUpdate)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode task response: %w", err)
	}

	return &task, nil
}
