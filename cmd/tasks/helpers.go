package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-logr/stdr"

	"github.com/taskapi/taskapi/internal/config"
	"github.com/taskapi/taskapi/pkg/taskapi"
)

// errTaskNotFound is returned when a task is missing from the fetched list.
var errTaskNotFound = errors.New("task not found")

// configError marks failures to load configuration or build the client.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// taskClient is the subset of *taskapi.Client the commands use.
type taskClient interface {
	FetchTasks(ctx context.Context) ([]taskapi.Task, error)
	CreateTask(ctx context.Context, input taskapi.NewTaskInput) (*taskapi.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string, completed bool) (*taskapi.Task, error)
}

// getClient creates a client from the resolved config and global flags
func getClient() (*taskapi.Client, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, &configError{err: err}
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	opts := []taskapi.ClientOption{taskapi.WithBaseURL(cfg.BaseURL)}
	if cfg.Timeout > 0 {
		opts = append(opts, taskapi.WithTimeout(cfg.Timeout))
	}
	if verbose {
		stdr.SetVerbosity(1)
		opts = append(opts, taskapi.WithLogger(stdr.New(log.New(os.Stderr, "[tasks] ", log.LstdFlags))))
	}

	c, err := taskapi.NewClient(opts...)
	if err != nil {
		return nil, &configError{err: err}
	}
	return c, nil
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, errTaskNotFound) {
		return ExitTaskNotFound
	}

	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}

	var apiErr *taskapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 0:
			return ExitServerUnreachable
		case http.StatusNotFound:
			return ExitTaskNotFound
		default:
			return ExitRequestFailed
		}
	}

	return ExitGeneralError
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}

// findTask returns the task with the given ID from the fetched list.
func findTask(ctx context.Context, c taskClient, id string) (*taskapi.Task, error) {
	tasks, err := c.FetchTasks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", errTaskNotFound, id)
}
