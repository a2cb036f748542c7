// Package main is the entry point for the haru CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haru/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "haru",
	Short: "haru - a todo list that keeps itself on disk",
	Long: `haru manages an ordered todo list from the terminal. Items, their
completion state and the display theme survive restarts through an
embedded key-value store (sqlite by default, badger optional).

Run without arguments to open the interactive UI; use the subcommands
for one-shot operations from scripts or the shell.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return ui.Run(app.todos, app.filters, app.themes, app.cfg)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("haru version {{.Version}}\n")
}
