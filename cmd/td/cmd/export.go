package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"td/internal/domain"
)

var exportFormat string

// exportedTask is the flattened view of a task written by export
type exportedTask struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Status    string     `json:"status" yaml:"status"`
	Created   time.Time  `json:"created" yaml:"created"`
	Started   *time.Time `json:"started,omitempty" yaml:"started,omitempty"`
	Completed *time.Time `json:"completed,omitempty" yaml:"completed,omitempty"`
	Tags      []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	DependsOn []string   `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all tasks to stdout as JSON or YAML",
	Long: `Write all tasks to stdout, including completed ones, with their status
and the IDs they depend on.

Examples:
  td export
  td export --format yaml > tasks.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeExport(os.Stdout, GetSession().State(), exportFormat)
	},
}

func exportTasks(g *domain.Graph) []exportedTask {
	tasks := make([]exportedTask, 0, g.Len())
	for t := range g.Tasks() {
		e := exportedTask{
			ID:        string(t.ID),
			Title:     t.Title,
			Status:    t.Status().String(),
			Created:   t.TimeCreated,
			Started:   t.TimeStarted,
			Completed: t.TimeCompleted,
			Tags:      t.Tags,
		}
		deps, _ := g.Dependencies(t.ID)
		for dep := range deps {
			e.DependsOn = append(e.DependsOn, string(dep.ID))
		}
		tasks = append(tasks, e)
	}
	return tasks
}

func writeExport(w io.Writer, g *domain.Graph, format string) error {
	tasks := exportTasks(g)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
}
