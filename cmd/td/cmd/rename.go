package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"td/internal/adapters/editor"
	"td/internal/application"
	"td/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> [title]",
	Short: "Change the title of a task",
	Long: `Change the title of a task. Without a title the current one is opened in $EDITOR.

Examples:
  td rename <id> Buy oat milk
  td rename <id>`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		title := strings.Join(args[1:], " ")
		ctx := context.Background()

		if title == "" {
			task, err := application.LookupTask(GetSession().State(), id)
			if err != nil {
				return err
			}
			title, err = editor.NewOpener().EditText(task.Title)
			if err != nil {
				return err
			}
		}

		result, err := commands.NewRenameCommand(GetSession(), id, title).Execute(ctx)
		if err != nil {
			return err
		}
		if err := saveSession(); err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
