package request

import (
	"encoding/json"
	"net/http"
	"strings"
)

// CreateTaskRequest represents a request to create a task.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// Validate validates the create task request.
func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, "title is required")
	}

	return errors
}

// ToggleTaskRequest represents a request to set a task's completed flag.
type ToggleTaskRequest struct {
	Completed *bool `json:"completed"`
}

// Validate validates the toggle task request.
func (r *ToggleTaskRequest) Validate() []string {
	var errors []string

	if r.Completed == nil {
		errors = append(errors, "completed is required")
	}

	return errors
}

// DecodeJSON decodes JSON from request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
