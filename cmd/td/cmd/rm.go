package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"td/internal/application"
	"td/internal/application/commands"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long: `Delete a task together with every dependency edge that touches it.
Tasks that depended on it lose that dependency.

Asks for confirmation when stdin is a terminal. Without a terminal,
--yes is required.

Examples:
  td rm <id>
  td rm <id> --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		if !rmYes {
			task, err := application.LookupTask(GetSession().State(), id)
			if err != nil {
				return err
			}
			ok, err := confirm(fmt.Sprintf("Delete %s %q?", task.ID, task.Title))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := commands.NewDeleteCommand(GetSession(), id).Execute(ctx)
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

// confirm asks a yes/no question on the terminal
func confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("stdin is not a terminal: pass --yes to delete")
	}

	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "delete without asking")
}
