package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/taskapi/taskapi/pkg/taskapi"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected int
	}{
		{"not found", http.StatusNotFound, ExitTaskNotFound},
		{"bad request", http.StatusBadRequest, ExitRequestFailed},
		{"server error", http.StatusInternalServerError, ExitRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c, err := taskapi.NewClient(taskapi.WithBaseURL(server.URL))
			if err != nil {
				t.Fatalf("NewClient failed: %v", err)
			}

			err = c.DeleteTask(context.Background(), "abc")
			if got := mapErrorToExitCode(err); got != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestMapErrorToExitCode_Other(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"missing task", errTaskNotFound, ExitTaskNotFound},
		{"config error", &configError{err: errors.New("bad toml")}, ExitConfigError},
		{"generic error", errors.New("something went wrong"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestMapErrorToExitCode_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := taskapi.NewClient(taskapi.WithBaseURL(url))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = c.FetchTasks(context.Background())
	if got := mapErrorToExitCode(err); got != ExitServerUnreachable {
		t.Errorf("mapErrorToExitCode() = %d, expected %d", got, ExitServerUnreachable)
	}
}

func TestGetClient_BaseURLFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	baseURL = "http://flag.example:9000/"
	defer func() { baseURL = "" }()

	c, err := getClient()
	if err != nil {
		t.Fatalf("getClient failed: %v", err)
	}
	if c.BaseURL() != "http://flag.example:9000" {
		t.Errorf("BaseURL() = %q, expected flag value", c.BaseURL())
	}
}

func TestGetClient_InvalidBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	baseURL = "ftp://nope"
	defer func() { baseURL = "" }()

	_, err := getClient()
	if got := mapErrorToExitCode(err); got != ExitConfigError {
		t.Errorf("expected config exit code, got %d (err %v)", got, err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
