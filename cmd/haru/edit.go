package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"haru/internal/cli"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>...",
	Short: "Replace a todo's text",
	Long: `Replace the text of the todo matching the id prefix. Completion
state and id are untouched.

Examples:
  haru edit a1 Buy oat milk`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	item, err := cli.MatchItem(args[0], app.todos.Items())
	if err != nil {
		return err
	}
	if !app.todos.Edit(item.ID, strings.Join(args[1:], " ")) {
		fmt.Println("edit discarded: text is empty")
		return nil
	}

	got, _ := app.todos.Get(item.ID)
	fmt.Printf("%s %s\n", cli.Cyan(cli.ShortID(got.ID)), got.Text)
	return nil
}
