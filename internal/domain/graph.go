package domain

import (
	"iter"
	"maps"
	"slices"
)

// node is one slot of the graph. Removed slots stay in place (live=false) and are
// reused by later inserts, so the slot of every surviving task never changes.
type node struct {
	task Task
	live bool
	out  []int // slots this task depends on, in insertion order
	in   []int // slots depending on this task
}

// Graph holds all tasks and their "depends on" edges.
//
// A TaskID resolves to at most one slot through index, which is updated on every
// insert and remove. The zero value is an empty graph ready to use.
// Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
	free  []int
	index map[TaskID]int
	count int
}

// NewGraph returns an empty graph
func NewGraph() *Graph {
	return &Graph{index: make(map[TaskID]int)}
}

// Len returns the number of tasks
func (g *Graph) Len() int {
	return g.count
}

// Contains reports whether id is in the graph
func (g *Graph) Contains(id TaskID) bool {
	_, ok := g.index[id]
	return ok
}

// AddTask inserts a task. If a task with the same ID already exists its content is
// replaced in place and its edges are kept.
func (g *Graph) AddTask(t Task) {
	if g.index == nil {
		g.index = make(map[TaskID]int)
	}
	if s, ok := g.index[t.ID]; ok {
		g.nodes[s].task = t
		return
	}

	var s int
	if n := len(g.free); n > 0 {
		s = g.free[n-1]
		g.free = g.free[:n-1]
		g.nodes[s] = node{task: t, live: true}
	} else {
		s = len(g.nodes)
		g.nodes = append(g.nodes, node{task: t, live: true})
	}
	g.index[t.ID] = s
	g.count++
}

// RemoveTask deletes a task and every edge touching it. Unknown IDs are ignored.
func (g *Graph) RemoveTask(id TaskID) {
	s, ok := g.index[id]
	if !ok {
		return
	}

	for _, to := range g.nodes[s].out {
		g.nodes[to].in = removeSlot(g.nodes[to].in, s)
	}
	for _, from := range g.nodes[s].in {
		g.nodes[from].out = removeSlot(g.nodes[from].out, s)
	}

	g.nodes[s] = node{}
	g.free = append(g.free, s)
	delete(g.index, id)
	g.count--
}

// AddDependency adds the edge from → to ("from depends on to").
// Duplicate edges and cycles are not rejected.
func (g *Graph) AddDependency(from, to TaskID) error {
	fs, err := g.slot(from)
	if err != nil {
		return err
	}
	ts, err := g.slot(to)
	if err != nil {
		return err
	}

	g.nodes[fs].out = append(g.nodes[fs].out, ts)
	g.nodes[ts].in = append(g.nodes[ts].in, fs)
	return nil
}

// HasDependency reports whether from depends on to.
// Returns false when either ID is unknown.
func (g *Graph) HasDependency(from, to TaskID) bool {
	fs, ok := g.index[from]
	if !ok {
		return false
	}
	ts, ok := g.index[to]
	if !ok {
		return false
	}
	return slices.Contains(g.nodes[fs].out, ts)
}

// Task returns a pointer to the stored task for in-place edits.
// The pointer is only valid until the next AddTask on this graph.
func (g *Graph) Task(id TaskID) (*Task, error) {
	s, err := g.slot(id)
	if err != nil {
		return nil, err
	}
	return &g.nodes[s].task, nil
}

// MustAddDependency is AddDependency for callers that already validated both ids.
// It panics with *UnknownTaskIDError otherwise.
func (g *Graph) MustAddDependency(from, to TaskID) {
	if err := g.AddDependency(from, to); err != nil {
		panic(err)
	}
}

// MustTask is Task for callers that already validated id.
// It panics with *UnknownTaskIDError otherwise.
func (g *Graph) MustTask(id TaskID) *Task {
	t, err := g.Task(id)
	if err != nil {
		panic(err)
	}
	return t
}

// Tasks yields every task in storage order. Storage order follows insertion order
// except that removed slots get reused; sort explicitly when order matters.
// Yielded values share tag slices with the graph and must not be modified.
func (g *Graph) Tasks() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for i := range g.nodes {
			if !g.nodes[i].live {
				continue
			}
			if !yield(g.nodes[i].task) {
				return
			}
		}
	}
}

// Dependencies yields the tasks id depends on (outgoing edges)
func (g *Graph) Dependencies(id TaskID) (iter.Seq[Task], error) {
	s, err := g.slot(id)
	if err != nil {
		return nil, err
	}
	return g.neighbours(s, func(n *node) []int { return n.out }), nil
}

// InverseDependencies yields the tasks that depend on id (incoming edges)
func (g *Graph) InverseDependencies(id TaskID) (iter.Seq[Task], error) {
	s, err := g.slot(id)
	if err != nil {
		return nil, err
	}
	return g.neighbours(s, func(n *node) []int { return n.in }), nil
}

// EdgeCount returns the number of dependency edges
func (g *Graph) EdgeCount() int {
	total := 0
	for i := range g.nodes {
		total += len(g.nodes[i].out)
	}
	return total
}

// Clone returns a deep copy of the graph
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: make([]node, len(g.nodes)),
		free:  slices.Clone(g.free),
		index: maps.Clone(g.index),
		count: g.count,
	}
	for i, n := range g.nodes {
		if !n.live {
			continue
		}
		c.nodes[i] = node{
			task: n.task.clone(),
			live: true,
			out:  slices.Clone(n.out),
			in:   slices.Clone(n.in),
		}
	}
	return c
}

// neighbours re-reads the adjacency list on every iteration so the sequence stays restartable
func (g *Graph) neighbours(s int, list func(*node) []int) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, other := range list(&g.nodes[s]) {
			if !yield(g.nodes[other].task) {
				return
			}
		}
	}
}

func (g *Graph) slot(id TaskID) (int, error) {
	s, ok := g.index[id]
	if !ok {
		return 0, &UnknownTaskIDError{ID: id}
	}
	return s, nil
}

func removeSlot(list []int, s int) []int {
	return slices.DeleteFunc(list, func(v int) bool { return v == s })
}
