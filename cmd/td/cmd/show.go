package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"td/internal/application/commands"
)

var showCopy bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task with its dependencies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewShowCommand(GetSession(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", result.ID, result.Title)
		fmt.Printf("  status:    %s\n", result.Status)
		fmt.Printf("  created:   %s\n", formatTime(&result.TimeCreated))
		fmt.Printf("  started:   %s\n", formatTime(result.TimeStarted))
		fmt.Printf("  completed: %s\n", formatTime(result.TimeCompleted))
		if len(result.Tags) > 0 {
			fmt.Printf("  tags:      %s\n", strings.Join(result.Tags, ", "))
		}
		if len(result.Dependencies) > 0 {
			fmt.Println("depends on:")
			for _, t := range result.Dependencies {
				fmt.Println("  " + formatTask(t))
			}
		}
		if len(result.Dependents) > 0 {
			fmt.Println("needed by:")
			for _, t := range result.Dependents {
				fmt.Println("  " + formatTask(t))
			}
		}

		if showCopy {
			if err := clipboard.WriteAll(result.Title); err != nil {
				return fmt.Errorf("failed to copy title: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the task title to the clipboard")
}
