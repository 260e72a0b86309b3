package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"td/internal/application/commands"
)

var dependCmd = &cobra.Command{
	Use:   "depend <id> [dependency-id]",
	Short: "Make a task depend on another",
	Long: `Make a task depend on another one. Without a dependency ID, list the
tasks it could depend on.

Examples:
  td depend <milk-id> <store-id>
  td depend <milk-id>`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 1 {
			candidates, err := commands.DependencyCandidates(GetSession().State(), args[0])
			if err != nil {
				return err
			}
			for _, t := range candidates {
				fmt.Println(formatTask(t))
			}
			return nil
		}

		result, err := commands.NewDependCommand(GetSession(), args[0], args[1]).Execute(ctx)
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
	rootCmd.AddCommand(dependCmd)
}
