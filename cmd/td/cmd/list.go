package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"td/internal/application/commands"
)

var (
	listAll         bool
	listActionable  bool
	listOldestFirst bool
	listSearch      string
	listTag         string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks, newest first. Completed tasks are hidden unless --all is given.
The defaults come from hide_completed and oldest_first in the config file.

Examples:
  td list
  td list --actionable
  td list --all --oldest-first
  td list --search milk --tag errand`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		opts := commands.ListOptions{
			ShowCompleted:  !cfg.HideCompleted,
			ActionableOnly: listActionable,
			OldestFirst:    cfg.OldestFirst,
			Search:         listSearch,
			Tag:            listTag,
		}
		if cmd.Flags().Changed("all") {
			opts.ShowCompleted = listAll
		}
		if cmd.Flags().Changed("oldest-first") {
			opts.OldestFirst = listOldestFirst
		}

		summaries, err := commands.NewListCommand(GetSession(), opts).Execute(ctx)
		if err != nil {
			return err
		}

		for _, s := range summaries {
			fmt.Println(formatSummary(s))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include completed tasks")
	listCmd.Flags().BoolVar(&listActionable, "actionable", false, "only tasks whose dependencies are completed")
	listCmd.Flags().BoolVar(&listOldestFirst, "oldest-first", false, "sort by creation time ascending")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "keep tasks whose title contains this text")
	listCmd.Flags().StringVar(&listTag, "tag", "", "keep tasks carrying this tag")
}
