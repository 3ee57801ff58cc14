package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskapi/taskapi/pkg/taskapi"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runList(cmd.Context(), c, os.Stdout))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runAdd(cmd.Context(), c, os.Stdout, args[0]))
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runRemove(cmd.Context(), c, os.Stdout, args[0]))
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a task done or not done",
	Long: `Set a task's completed flag.

Without --completed the current value is fetched and inverted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var completed *bool
		if cmd.Flags().Changed("completed") {
			v, _ := cmd.Flags().GetBool("completed")
			completed = &v
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}
		handleError(runToggle(cmd.Context(), c, os.Stdout, args[0], completed))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().Bool("completed", true, "Completed value to set")
}

func runList(ctx context.Context, c taskClient, w io.Writer) error {
	tasks, err := c.FetchTasks(ctx)
	if err != nil {
		return err
	}

	printTaskList(w, tasks, jsonOutput)
	return nil
}

func runAdd(ctx context.Context, c taskClient, w io.Writer, title string) error {
	task, err := c.CreateTask(ctx, taskapi.NewTaskInput{Title: title})
	if err != nil {
		return err
	}

	printTask(w, task, jsonOutput)
	return nil
}

func runRemove(ctx context.Context, c taskClient, w io.Writer, id string) error {
	if err := c.DeleteTask(ctx, id); err != nil {
		return err
	}

	printSuccess(w, fmt.Sprintf("Task %s deleted", id), jsonOutput)
	return nil
}

// runToggle sets the completed flag, inverting the current value when completed is nil.
func runToggle(ctx context.Context, c taskClient, w io.Writer, id string, completed *bool) error {
	var value bool
	if completed != nil {
		value = *completed
	} else {
		current, err := findTask(ctx, c, id)
		if err != nil {
			return err
		}
		value = !current.Completed
	}

	task, err := c.ToggleTask(ctx, id, value)
	if err != nil {
		return err
	}

	printTask(w, task, jsonOutput)
	return nil
}
