package domain

import "fmt"

// CurrentVersion is the database format version written by this build
const CurrentVersion uint8 = 1

// DiskModel is the persisted shape of a graph: tasks in storage order, each carrying
// the IDs of the tasks it depends on. Slot positions never reach the disk.
type DiskModel struct {
	Tasks []TaskRecord `json:"tasks" yaml:"tasks"`
}

// TaskRecord is one task as stored on disk
type TaskRecord struct {
	Task         `yaml:",inline"`
	Dependencies []TaskID `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// ToDiskModel converts a graph into its disk representation
func ToDiskModel(g *Graph) DiskModel {
	model := DiskModel{Tasks: make([]TaskRecord, 0, g.Len())}

	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.live {
			continue
		}

		rec := TaskRecord{Task: n.task.clone()}
		for _, to := range n.out {
			rec.Dependencies = append(rec.Dependencies, g.nodes[to].task.ID)
		}
		model.Tasks = append(model.Tasks, rec)
	}

	return model
}

// FromDiskModel rebuilds a graph from its disk representation.
// Tasks keep the order of the model. Every dependency must name a task in the same model.
func FromDiskModel(model DiskModel) (*Graph, error) {
	g := NewGraph()

	for _, rec := range model.Tasks {
		if rec.ID == "" {
			return nil, &MalformedDatabaseError{Err: fmt.Errorf("task %q has no id", rec.Title)}
		}
		if rec.TimeCreated.IsZero() {
			return nil, &MalformedDatabaseError{Err: fmt.Errorf("task %s has no creation time", rec.ID)}
		}
		if g.Contains(rec.ID) {
			return nil, &MalformedDatabaseError{Err: fmt.Errorf("duplicate task id %s", rec.ID)}
		}
		g.AddTask(rec.Task.clone())
	}

	for _, rec := range model.Tasks {
		for _, dep := range rec.Dependencies {
			if !g.Contains(dep) {
				return nil, &UnresolvedDependencyError{TaskID: rec.ID, DependencyID: dep}
			}
			if err := g.AddDependency(rec.ID, dep); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
