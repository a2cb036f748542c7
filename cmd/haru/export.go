package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"haru/internal/todo"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export todos as YAML",
	Long: `Export the full todo list as YAML.

This is a one-way export for viewing or sharing - it cannot be
re-imported.

Examples:
  haru export
  haru export --out todos.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

type exportDoc struct {
	Todos []todo.Item `yaml:"todos"`
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := yaml.Marshal(exportDoc{Todos: app.todos.Items()})
	if err != nil {
		return err
	}
	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", exportOut)
	return nil
}
