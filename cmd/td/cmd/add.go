package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"td/internal/application/commands"
)

var (
	addTags    []string
	addDepends []string
	addCopy    bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Long: `Create a task. The remaining arguments are joined into the title.

Examples:
  td add Go to store
  td add "Buy milk" --tag errand --depends <store-id>
  td add "Call the plumber" --copy    # copy the new ID to the clipboard`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		createCmd := commands.NewCreateTaskCommand(GetSession(), strings.Join(args, " "))
		createCmd.Tags = addTags
		createCmd.DependsOn = addDepends

		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		if err := saveSession(); err != nil {
			return err
		}
		fmt.Println(result.Message)

		if addCopy {
			if err := clipboard.WriteAll(string(result.Task.ID)); err != nil {
				return fmt.Errorf("failed to copy ID: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "tag to attach (repeatable)")
	addCmd.Flags().StringSliceVarP(&addDepends, "depends", "d", nil, "ID of a task the new one depends on (repeatable)")
	addCmd.Flags().BoolVar(&addCopy, "copy", false, "copy the new task ID to the clipboard")
}
