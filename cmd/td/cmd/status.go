package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"td/internal/application"
	"td/internal/application/commands"
	"td/internal/ports"
)

var toggleAt string

var startCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Mark a task as started, or clear its started time",
	Long: `Mark a task as started. Running it again on a started task clears the time.

Examples:
  td start <id>
  td start <id> --at "yesterday 9am"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(commands.NewStartCommand, args[0])
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed, or clear its completed time",
	Long: `Mark a task as completed. Running it again on a completed task reopens it.

Examples:
  td done <id>
  td done <id> --at "2024-03-01 17:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(commands.NewCompleteCommand, args[0])
	},
}

func runToggle(newCommand func(ports.TaskStore, string) *commands.ToggleCommand, id string) error {
	at, err := application.ParseTime(toggleAt, time.Now())
	if err != nil {
		return err
	}

	toggleCmd := newCommand(GetSession(), id)
	toggleCmd.At = at

	result, err := toggleCmd.Execute(context.Background())
	if err != nil {
		return err
	}
	if err := saveSession(); err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(doneCmd)
	for _, c := range []*cobra.Command{startCmd, doneCmd} {
		c.Flags().StringVar(&toggleAt, "at", "", "when it happened, e.g. \"2024-03-01 14:00\" or \"yesterday 5pm\"")
	}
}
