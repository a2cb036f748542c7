package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haru/internal/cli"
	"haru/internal/todo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List todos under the given view filter.

The filter defaults to default_filter from the config file.

Examples:
  haru list
  haru list --filter active
  haru list -f completed`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFilter string

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "view filter: all, active or completed")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	selector := listFilter
	if selector == "" {
		selector = app.cfg.DefaultFilter
	}
	filter, err := todo.ParseFilter(selector)
	if err != nil {
		return err
	}
	if err := app.filters.Set(filter); err != nil {
		return err
	}

	items := app.todos.Items()
	visible := todo.Visible(items, app.filters.Current())
	if len(visible) == 0 {
		fmt.Println("no todos")
	} else {
		table := cli.NewTable()
		table.SetMaxWidth(2, cli.DefaultMaxTextWidth)
		for _, item := range visible {
			marker := "[ ]"
			text := item.Text
			if item.Completed {
				marker = cli.Green("[x]")
				text = cli.Gray(text)
			}
			table.AddRow(cli.Cyan(cli.ShortID(item.ID)), marker, text)
		}
		table.Render(os.Stdout)
	}

	counts := todo.CountItems(items)
	fmt.Printf("%d active, %d completed\n", counts.Active, counts.Completed)
	return nil
}
