package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"td/internal/domain"
)

var testTime = time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)

func openTestIndex(t *testing.T) (*Index, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dbFile := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(dbFile, []byte(`{}`), 0644); err != nil {
		t.Fatalf("failed to write database file: %v", err)
	}

	idx := NewIndex()
	if err := idx.Open(dbFile); err != nil {
		t.Fatalf("failed to open index: %v", err)
	}
	t.Cleanup(func() {
		if err := idx.Close(); err != nil {
			t.Errorf("failed to close index: %v", err)
		}
	})
	return idx, dbFile
}

func sampleGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	milk := domain.Task{ID: "MKMKMKMK", Title: "Buy milk", TimeCreated: testTime, Tags: []string{"errand", "dairy"}}
	store := domain.Task{ID: "STSTSTST", Title: "Go to store", TimeCreated: testTime}
	done := testTime.Add(time.Hour)
	wallet := domain.Task{ID: "WKWKWKWK", Title: "Find wallet", TimeCreated: testTime, TimeCompleted: &done}
	for _, task := range []domain.Task{milk, store, wallet} {
		g.AddTask(task)
	}
	for _, e := range [][2]domain.TaskID{{milk.ID, store.ID}, {store.ID, wallet.ID}} {
		if err := g.AddDependency(e[0], e[1]); err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}
	}
	return g
}

func count(t *testing.T, idx *Index, table string) int {
	t.Helper()
	var n int
	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

func TestIndex_OpenLocation(t *testing.T) {
	idx, dbFile := openTestIndex(t)

	want := filepath.Join(os.Getenv("XDG_DATA_HOME"), "td", "index", hashPath(dbFile)+".db")
	if idx.Path() != want {
		t.Errorf("index path = %s, want %s", idx.Path(), want)
	}
	if _, err := os.Stat(idx.Path()); err != nil {
		t.Errorf("expected index file to exist: %v", err)
	}
}

func TestIndex_SyncFull(t *testing.T) {
	idx, _ := openTestIndex(t)

	if !idx.NeedsFullRebuild() {
		t.Error("fresh index must need a rebuild")
	}

	stats, err := idx.SyncFull(sampleGraph(t))
	if err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if stats.TasksIndexed != 3 || stats.TagsIndexed != 2 || stats.EdgesIndexed != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if idx.NeedsFullRebuild() {
		t.Error("index must be current right after a sync")
	}

	// a second sync replaces rather than appends
	g := sampleGraph(t)
	g.RemoveTask("WKWKWKWK")
	if _, err := idx.SyncFull(g); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if n := count(t, idx, "tasks"); n != 2 {
		t.Errorf("expected 2 tasks, got %d", n)
	}
	if n := count(t, idx, "deps"); n != 1 {
		t.Errorf("expected 1 dependency, got %d", n)
	}
}

func TestIndex_NeedsRebuildAfterDatabaseChange(t *testing.T) {
	idx, dbFile := openTestIndex(t)
	if _, err := idx.SyncFull(sampleGraph(t)); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(dbFile, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	if !idx.NeedsFullRebuild() {
		t.Error("expected rebuild after the database file changed")
	}
}

func TestIndex_Search(t *testing.T) {
	idx, _ := openTestIndex(t)
	if _, err := idx.SyncFull(sampleGraph(t)); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	tests := []struct {
		name      string
		query     string
		wantIDs   []domain.TaskID
		wantField string
	}{
		{name: "title substring", query: "milk", wantIDs: []domain.TaskID{"MKMKMKMK"}, wantField: "title"},
		{name: "case insensitive", query: "STORE", wantIDs: []domain.TaskID{"STSTSTST"}, wantField: "title"},
		{name: "tag", query: "dairy", wantIDs: []domain.TaskID{"MKMKMKMK"}, wantField: "tag"},
		{name: "subsequence", query: "fwl", wantIDs: []domain.TaskID{"WKWKWKWK"}, wantField: "title"},
		{name: "wildcards are literal", query: "%", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := idx.Search(tt.query)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(results) != len(tt.wantIDs) {
				t.Fatalf("expected %d results, got %+v", len(tt.wantIDs), results)
			}
			for i, r := range results {
				if r.ID != tt.wantIDs[i] || r.Field != tt.wantField {
					t.Errorf("result %d = %+v", i, r)
				}
			}
		})
	}
}

func TestIndex_SearchReportsStatus(t *testing.T) {
	idx, _ := openTestIndex(t)
	if _, err := idx.SyncFull(sampleGraph(t)); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	results, err := idx.Search("wallet")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Status != domain.StatusCompleted {
		t.Errorf("expected completed wallet task, got %+v", results)
	}
}

func TestIndexTx_DeleteTask(t *testing.T) {
	idx, _ := openTestIndex(t)
	if _, err := idx.SyncFull(sampleGraph(t)); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	tx, err := idx.BeginTx()
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if err := tx.DeleteTask("STSTSTST"); err != nil {
		tx.Rollback()
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if n := count(t, idx, "tasks"); n != 2 {
		t.Errorf("expected 2 tasks, got %d", n)
	}
	if n := count(t, idx, "deps"); n != 0 {
		t.Errorf("expected edges touching the task to be gone, got %d", n)
	}
}

func TestSubsequencePattern(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mlk", "%m%l%k%"},
		{"a_b", `%a%\_%b%`},
		{"", "%"},
	}

	for _, tt := range tests {
		if got := subsequencePattern(tt.input); got != tt.want {
			t.Errorf("subsequencePattern(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
