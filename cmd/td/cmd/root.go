package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"td/internal/adapters/filesystem"
	"td/internal/adapters/sqlite"
	"td/internal/application"
	"td/internal/config"
	"td/internal/logging"
)

// skipSession marks commands that run without opening the database
const skipSession = "skip-session"

var (
	dbPath  string
	verbose bool
	cfg     *config.Config
	session *application.Session
)

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "Keep track of tasks and what they depend on",
	Long: `td is a personal task manager that stores tasks as a dependency graph.

Every task can depend on other tasks. A task is actionable once everything
it depends on is completed.

Examples:
  td add "Go to store"
  td add "Buy milk" --depends <store-id>
  td list --actionable
  td done <id>`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("db") {
			dbPath = cfg.Database
		}

		if _, ok := cmd.Annotations[skipSession]; ok {
			return nil
		}
		return openSession()
	},
}

// Execute runs the root command
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command and closes the session whether or not it failed
func execute() error {
	err := rootCmd.Execute()
	if session != nil {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		session = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DatabasePath(), "path to the task database")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log index activity to stderr")
}

func openSession() error {
	repo := filesystem.NewRepository(dbPath)

	var opts []application.SessionOption
	if verbose {
		opts = append(opts, application.WithLogger(logging.NewStderrLogger("td: ")))
	}

	var idx *sqlite.Index
	if cfg.Index {
		idx = sqlite.NewIndex()
		if err := idx.Open(repo.Path()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: search index disabled: %v\n", err)
			idx = nil
		} else {
			opts = append(opts, application.WithIndex(idx))
		}
	}

	s, err := application.OpenSession(repo, opts...)
	if err != nil {
		if idx != nil {
			idx.Close()
		}
		if application.IsLoadError(err) {
			return fmt.Errorf("%w\nfix or move %s away to start with an empty database", err, repo.Path())
		}
		return err
	}
	if s.Created() {
		fmt.Fprintf(os.Stderr, "Created %s\n", s.Path())
	}

	session = s
	return nil
}

// GetSession returns the opened session
func GetSession() *application.Session {
	return session
}

// saveSession writes pending edits to the database
func saveSession() error {
	if !session.IsDirty() {
		return nil
	}
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", session.Path(), err)
	}
	return nil
}
