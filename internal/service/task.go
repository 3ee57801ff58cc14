package service

import (
	"context"
	"errors"

	"github.com/taskapi/taskapi/internal/domain"
	"github.com/taskapi/taskapi/internal/store"
)

// TaskRepository is the persistence used by TaskService.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskService handles task business logic.
type TaskService struct {
	taskRepo TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create creates a new, not yet completed task.
func (s *TaskService) Create(ctx context.Context, title string) (*domain.Task, error) {
	task := domain.NewTask(title)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, domain.NewInternalError(err)
	}

	return task, nil
}

// Get retrieves a task by ID.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(id, err)
	}
	return task, nil
}

// List returns all tasks in creation order.
func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// SetCompleted replaces the completed flag of a task.
func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error) {
	task, err := s.taskRepo.SetCompleted(ctx, id, completed)
	if err != nil {
		return nil, mapStoreError(id, err)
	}
	return task, nil
}

// Delete deletes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return mapStoreError(id, err)
	}
	return nil
}

func mapStoreError(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.NewTaskNotFoundError(id)
	}
	return domain.NewInternalError(err)
}
