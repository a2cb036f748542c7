package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed todos",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	switch removed := app.todos.ClearCompleted(); removed {
	case 0:
		fmt.Println("nothing to clear")
	case 1:
		fmt.Println("cleared 1 completed todo")
	default:
		fmt.Printf("cleared %d completed todos\n", removed)
	}
	return nil
}
