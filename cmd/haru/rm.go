package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"haru/internal/cli"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a todo",
	Long: `Delete the todo matching the id prefix.

Examples:
  haru rm a1b2c3d4
  haru rm a1`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	item, err := cli.MatchItem(args[0], app.todos.Items())
	if err != nil {
		return err
	}
	app.todos.Remove(item.ID)
	fmt.Printf("removed %s\n", item.Text)
	return nil
}
