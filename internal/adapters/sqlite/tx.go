package sqlite

import (
	"database/sql"

	"td/internal/domain"
	"td/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// Clear removes all tasks, tags and dependencies
func (t *indexTx) Clear() error {
	for _, table := range []string{"deps", "tags", "tasks"} {
		if _, err := t.tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	return nil
}

// UpsertTask inserts or updates a task
func (t *indexTx) UpsertTask(task *domain.Task) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO tasks (id, title, status, time_created)
		VALUES (?, ?, ?, ?)
	`, string(task.ID), task.Title, int(task.Status()), task.TimeCreated.UnixNano())
	return err
}

// DeleteTask removes a task together with its tags and outgoing dependencies
func (t *indexTx) DeleteTask(id domain.TaskID) error {
	if _, err := t.tx.Exec(`DELETE FROM tags WHERE task_id = ?`, string(id)); err != nil {
		return err
	}
	if _, err := t.tx.Exec(`DELETE FROM deps WHERE from_id = ? OR to_id = ?`, string(id), string(id)); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM tasks WHERE id = ?`, string(id))
	return err
}

// InsertTag adds a tag at the given position of a task's tag list
func (t *indexTx) InsertTag(id domain.TaskID, position int, tag string) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO tags (task_id, position, tag)
		VALUES (?, ?, ?)
	`, string(id), position, tag)
	return err
}

// InsertDependency adds an edge at the given position of a task's dependency list
func (t *indexTx) InsertDependency(from, to domain.TaskID, position int) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO deps (from_id, to_id, position)
		VALUES (?, ?, ?)
	`, string(from), string(to), position)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
