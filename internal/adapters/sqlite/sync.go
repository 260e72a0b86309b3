package sqlite

import (
	"fmt"
	"strconv"
	"time"

	"td/internal/domain"
)

// SyncFull replaces the index content with g in a single transaction
func (idx *Index) SyncFull(g *domain.Graph) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin index transaction: %w", err)
	}

	if err := tx.Clear(); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear index: %w", err)
	}

	for task := range g.Tasks() {
		if err := tx.UpsertTask(&task); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to index task %s: %w", task.ID, err)
		}
		stats.TasksIndexed++

		for i, tag := range task.Tags {
			if err := tx.InsertTag(task.ID, i, tag); err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to index tag of %s: %w", task.ID, err)
			}
			stats.TagsIndexed++
		}

		deps, err := g.Dependencies(task.ID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		i := 0
		for dep := range deps {
			if err := tx.InsertDependency(task.ID, dep.ID, i); err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to index dependency of %s: %w", task.ID, err)
			}
			i++
			stats.EdgesIndexed++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit index: %w", err)
	}

	if err := idx.updateMeta(time.Now()); err != nil {
		return stats, fmt.Errorf("failed to update metadata: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// updateMeta records the schema version, the database path hash and the sync time
func (idx *Index) updateMeta(syncedAt time.Time) error {
	entries := [][2]string{
		{"schema_version", schemaVersion},
		{"database_path_hash", hashPath(idx.databasePath)},
		{"last_sync_time", strconv.FormatInt(syncedAt.UnixNano(), 10)},
	}
	for _, e := range entries {
		if err := idx.setMeta(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}
