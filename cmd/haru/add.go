package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"haru/internal/cli"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new todo",
	Long: `Add a new todo to the end of the list.

Examples:
  haru add Buy milk
  haru add "Walk the dog"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	item, ok := app.todos.Add(strings.Join(args, " "))
	if !ok {
		fmt.Println("nothing to add: text is empty")
		return nil
	}
	fmt.Printf("%s %s\n", cli.Cyan(cli.ShortID(item.ID)), item.Text)
	return nil
}
