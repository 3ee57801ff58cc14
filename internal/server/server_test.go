package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/taskapi/taskapi/internal/api"
	"github.com/taskapi/taskapi/internal/server"
	"github.com/taskapi/taskapi/internal/store"
	"github.com/taskapi/taskapi/pkg/taskapi"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(store.DriverSQLite, filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

// startServer starts a server on a random port and waits until it listens.
func startServer(t *testing.T) (*server.Server, <-chan error) {
	t.Helper()

	srv := server.New("localhost:0", openStore(t), api.Options{})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	deadline := time.Now().Add(5 * time.Second)
	for srv.Addr() == "" {
		if time.Now().After(deadline) {
			t.Fatal("server did not start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	return srv, errChan
}

func shutdown(t *testing.T, srv *server.Server) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("shutdown error: %v", err)
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv, errChan := startServer(t)

	shutdown(t, srv)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("unexpected error from Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server did not stop after shutdown")
	}
}

func TestServer_Health(t *testing.T) {
	srv, _ := startServer(t)
	defer shutdown(t, srv)

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	if err != nil {
		t.Fatalf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := server.New("", openStore(t), api.Options{})

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if srv.Addr() != "" {
		t.Errorf("expected empty address before start, got %q", srv.Addr())
	}
}

func TestServer_ClientRoundTrip(t *testing.T) {
	srv, _ := startServer(t)
	defer shutdown(t, srv)

	client, err := taskapi.NewClient(taskapi.WithBaseURL("http://" + srv.Addr()))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	ctx := context.Background()

	tasks, err := client.FetchTasks(ctx)
	if err != nil {
		t.Fatalf("FetchTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %v", tasks)
	}

	first, err := client.CreateTask(ctx, taskapi.NewTaskInput{Title: "Learn React"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	second, err := client.CreateTask(ctx, taskapi.NewTaskInput{Title: "Learn Go"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if first.Completed || first.ID == "" {
		t.Errorf("unexpected created task: %+v", first)
	}

	toggled, err := client.ToggleTask(ctx, second.ID, true)
	if err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected toggled task to be completed")
	}

	tasks, err = client.FetchTasks(ctx)
	if err != nil {
		t.Fatalf("FetchTasks: %v", err)
	}
	want := []taskapi.Task{
		{ID: first.ID, Title: "Learn React", Completed: false},
		{ID: second.ID, Title: "Learn Go", Completed: true},
	}
	if diff := cmp.Diff(want, tasks); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}

	if err := client.DeleteTask(ctx, first.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := client.DeleteTask(ctx, first.ID); !taskapi.IsDeleteError(err) {
		t.Errorf("expected delete error for missing task, got %v", err)
	} else if taskapi.StatusCode(err) != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", taskapi.StatusCode(err))
	}
}

func TestServer_ClientFailures(t *testing.T) {
	srv, _ := startServer(t)
	defer shutdown(t, srv)

	client, err := taskapi.NewClient(taskapi.WithBaseURL("http://" + srv.Addr()))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	ctx := context.Background()

	if _, err := client.CreateTask(ctx, taskapi.NewTaskInput{Title: ""}); err == nil || err.Error() != "Failed to create task" {
		t.Errorf("expected create failure, got %v", err)
	}
	if _, err := client.ToggleTask(ctx, "Task1", true); err == nil || err.Error() != "Failed to update task" {
		t.Errorf("expected update failure, got %v", err)
	}
	if err := client.DeleteTask(ctx, "Bad Task"); err == nil || err.Error() != "Failed to delete task" {
		t.Errorf("expected delete failure, got %v", err)
	}
}

func TestServer_ClientAfterShutdown(t *testing.T) {
	srv, _ := startServer(t)
	addr := srv.Addr()
	shutdown(t, srv)

	client, err := taskapi.NewClient(taskapi.WithBaseURL("http://" + addr))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.FetchTasks(context.Background())
	if err == nil || err.Error() != "Failed to fetch tasks" {
		t.Errorf("expected fetch failure, got %v", err)
	}
}
