package zombiezen

import (
	"context"
	"fmt"

	"github.com/ngu132/eiken-vocab/count"
	"github.com/ngu132/eiken-vocab/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	laneUnigram = "unigram"
	lanePhrase  = "phrase"
)

// VocabStore persists counting runs: one row per run plus one row per
// distinct event key and lane.
type VocabStore struct {
	pool *sqlitex.Pool
}

var _ storage.VocabRepository = (*VocabStore)(nil)

func NewVocabStore(pool *sqlitex.Pool) *VocabStore {
	return &VocabStore{pool: pool}
}

func (h *VocabStore) Runs() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn, "SELECT name, include_edges FROM runs ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			runs = append(runs, storage.Run{
				Name:         stmt.ColumnText(0),
				IncludeEdges: stmt.ColumnInt(1) != 0,
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *VocabStore) ReadResult(name string) (count.Result, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return count.Result{}, err
	}
	defer h.pool.Put(conn)

	res := count.NewResult()

	var runID int64
	found := false
	err = sqlitex.Execute(conn, "SELECT id, unigram_n, phrase_n, skipped FROM runs WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			runID = stmt.ColumnInt64(0)
			res.Unigram.N = stmt.ColumnInt(1)
			res.Phrase.N = stmt.ColumnInt(2)
			res.Skipped = stmt.ColumnInt(3)
			return nil
		},
	})
	if err != nil {
		return count.Result{}, err
	}
	if !found {
		return count.Result{}, fmt.Errorf("run not found: %s", name)
	}

	err = sqlitex.Execute(conn, "SELECT lane, key, count FROM events WHERE run_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{runID},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			key := stmt.ColumnText(1)
			n := stmt.ColumnInt(2)
			switch stmt.ColumnText(0) {
			case laneUnigram:
				res.Unigram.Freq[key] = n
			case lanePhrase:
				res.Phrase.Freq[key] = n
			}
			return nil
		},
	})
	if err != nil {
		return count.Result{}, err
	}

	return res, nil
}

func (h *VocabStore) WriteResult(run storage.Run, res count.Result) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	edges := 0
	if run.IncludeEdges {
		edges = 1
	}

	err = sqlitex.Execute(conn,
		"INSERT INTO runs (name, include_edges, unigram_n, phrase_n, skipped) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{run.Name, edges, res.Unigram.N, res.Phrase.N, res.Skipped},
		})
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID := conn.LastInsertRowID()

	if err := h.writeLane(conn, runID, laneUnigram, res.Unigram); err != nil {
		return err
	}
	return h.writeLane(conn, runID, lanePhrase, res.Phrase)
}

func (h *VocabStore) writeLane(conn *sqlite.Conn, runID int64, lane string, tb count.Table) error {
	for key, n := range tb.Freq {
		err := sqlitex.Execute(conn, "INSERT INTO events (run_id, lane, key, count) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{runID, lane, key, n},
		})
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}
	return nil
}
