package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"td/internal/application/commands"
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> <tag>",
	Short: "Add a tag to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewTagCommand(GetSession(), args[0], args[1]).Execute(ctx)
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
	rootCmd.AddCommand(tagCmd)
}
