package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"td/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search task titles and tags",
	Long: `Fuzzy search task titles and tags. Letters must appear in order, so
"bym" finds "Buy milk". Queries shorter than two characters return nothing.

Examples:
  td search milk
  td search errand`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		ctx := context.Background()

		s := GetSession()
		results, err := commands.NewSearchCommand(s, s.SearchIndex(), query).Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s %s %s  (%s: %s)\n", r.ID, statusMark(r.Status), r.Title, r.Field, r.MatchedText)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
