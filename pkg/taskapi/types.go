package taskapi

// TasksPath is the path of the task collection on the server.
const TasksPath = "/api/tasks"

// Task represents a todo item.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTaskInput is the payload accepted when creating a task. The server
// assigns the ID and defaults Completed to false.
type NewTaskInput struct {
	Title string `json:"title"`
}

// ToggleInput is the payload accepted when toggling a task.
type ToggleInput struct {
	Completed bool `json:"completed"`
}
