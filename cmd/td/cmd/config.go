package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"td/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective configuration",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSession: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("# %s\n", config.Path())
		effective := *cfg
		effective.Database = dbPath
		return effective.Encode(os.Stdout)
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with the default settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSession: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path()
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
