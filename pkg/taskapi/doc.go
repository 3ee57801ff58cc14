// Package taskapi provides a Go client for a todo list REST backend.
//
// The backend exposes a single task collection at /api/tasks. Each client
// method performs exactly one round-trip and either returns the decoded
// response or a named failure.
//
// # Getting Started
//
//	client, err := taskapi.NewClient(
//	    taskapi.WithBaseURL("http://localhost:8080"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Tasks
//
// Fetch all tasks in server order:
//
//	tasks, err := client.FetchTasks(ctx)
//
// Create a task (the server assigns the ID):
//
//	task, err := client.CreateTask(ctx, taskapi.NewTaskInput{Title: "Learn Go"})
//
// Mark a task as completed:
//
//	task, err := client.ToggleTask(ctx, task.ID, true)
//
// Delete a task:
//
//	err := client.DeleteTask(ctx, task.ID)
//
// Task identifiers are appended to the collection path as given. Callers
// holding identifiers with reserved URL characters must escape them first.
//
// # Error Handling
//
// Every operation fails with an *Error whose message is fixed per operation.
// Transport failures and non-2xx responses are reported the same way:
//
//	if _, err := client.FetchTasks(ctx); err != nil {
//	    if taskapi.IsFetchError(err) {
//	        // "Failed to fetch tasks"
//	    }
//	}
//
// # Configuration Options
//
//	taskapi.WithBaseURL(url)        // Server base URL (default: http://localhost:8080)
//	taskapi.WithHTTPClient(doer)    // Custom transport, e.g. *http.Client
//	taskapi.WithTimeout(duration)   // Timeout for the default transport (default: none)
//	taskapi.WithLogger(logger)      // logr.Logger for request tracing
package taskapi
