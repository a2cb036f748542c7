package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"haru/internal/cli"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a todo between done and active",
	Long: `Flip the completion state of the todo matching the id prefix.

Examples:
  haru done a1b2c3d4
  haru done a1`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	item, err := cli.MatchItem(args[0], app.todos.Items())
	if err != nil {
		return err
	}
	app.todos.Toggle(item.ID)

	got, _ := app.todos.Get(item.ID)
	marker := "[ ]"
	if got.Completed {
		marker = cli.Green("[x]")
	}
	fmt.Printf("%s %s\n", marker, got.Text)
	return nil
}
