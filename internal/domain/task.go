package domain

import (
	"time"

	"github.com/taskapi/taskapi/pkg/idgen"
)

// Task represents a todo item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"-"`
}

// NewTask creates a new, not yet completed task with a fresh ID.
func NewTask(title string) *Task {
	return &Task{
		ID:        idgen.MustGenerate(),
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
}
