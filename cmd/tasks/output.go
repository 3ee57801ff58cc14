package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taskapi/taskapi/pkg/taskapi"
)

// printTask prints a single task to the writer
func printTask(w io.Writer, task *taskapi.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Done:\t%s\n", checkbox(task.Completed))
	tw.Flush()
}

// printTaskList prints tasks in server order
func printTaskList(w io.Writer, tasks []taskapi.Task, jsonOutput bool) {
	if jsonOutput {
		if tasks == nil {
			tasks = []taskapi.Task{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "DONE\tID\tTITLE\n")
	fmt.Fprintf(tw, "----\t--\t-----\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", checkbox(task.Completed), task.ID, truncate(task.Title, 50))
	}
	tw.Flush()

	done := 0
	for _, task := range tasks {
		if task.Completed {
			done++
		}
	}
	fmt.Fprintf(w, "\n%d of %d done\n", done, len(tasks))
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"message": message,
		})
		return
	}

	fmt.Fprintln(w, message)
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
