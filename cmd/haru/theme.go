package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [toggle]",
	Short: "Show or toggle the display theme",
	Long: `Show the persisted display theme, or flip it between light and dark.

Examples:
  haru theme
  haru theme toggle`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 1 {
		if args[0] != "toggle" {
			return fmt.Errorf("unknown argument %q, expected \"toggle\"", args[0])
		}
		fmt.Println(string(app.themes.Toggle()))
		return nil
	}
	fmt.Println(string(app.themes.Current()))
	return nil
}
