// Package persistence provides a SQLite archive of completed simulation runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/fortune/internal/engine"
)

// DB wraps a SQLite connection for run archiving.
type DB struct {
	conn *sqlx.DB
}

// RunRecord is one archived run with its summary statistics.
type RunRecord struct {
	ID         string  `db:"id" json:"id"`
	CreatedAt  int64   `db:"created_at" json:"created_at"`
	Label      string  `db:"label" json:"label"`
	Seed       int64   `db:"seed" json:"seed"`
	N          int     `db:"n" json:"n"`
	Steps      int     `db:"steps" json:"steps"`
	ParamsJSON string  `db:"params_json" json:"-"`
	Mean       float64 `db:"mean" json:"mean"`
	Median     float64 `db:"median" json:"median"`
	Min        float64 `db:"min" json:"min"`
	Max        float64 `db:"max" json:"max"`
	Gini       float64 `db:"gini" json:"gini"`
	TopDecile  float64 `db:"top_decile" json:"top_decile_share"`
	TalentCorr float64 `db:"talent_corr" json:"talent_correlation"`
}

// Params decodes the stored simulation parameters.
func (r RunRecord) Params() (engine.Params, error) {
	var p engine.Params
	if err := json.Unmarshal([]byte(r.ParamsJSON), &p); err != nil {
		return p, fmt.Errorf("decode params for run %s: %w", r.ID, err)
	}
	return p, nil
}

// CapitalRow is one individual's archived outcome.
type CapitalRow struct {
	Index   int     `db:"idx" json:"index"`
	Talent  float64 `db:"talent" json:"talent"`
	Initial float64 `db:"initial_capital" json:"initial_capital"`
	Final   float64 `db:"final_capital" json:"final_capital"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		label TEXT NOT NULL,
		seed INTEGER NOT NULL,
		n INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		params_json TEXT NOT NULL,
		mean REAL NOT NULL,
		median REAL NOT NULL,
		min REAL NOT NULL,
		max REAL NOT NULL,
		gini REAL NOT NULL,
		top_decile REAL NOT NULL,
		talent_corr REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_capital (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		talent REAL NOT NULL,
		initial_capital REAL NOT NULL,
		final_capital REAL NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun archives a result and its per-individual outcomes, returning the new run ID.
func (db *DB) SaveRun(label string, res *engine.Result) (string, error) {
	paramsJSON, err := json.Marshal(res.Params)
	if err != nil {
		return "", fmt.Errorf("encode params: %w", err)
	}

	sum := res.Summary()
	rec := RunRecord{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().Unix(),
		Label:      label,
		Seed:       res.Seed,
		N:          len(res.Final),
		Steps:      len(res.Capital) - 1,
		ParamsJSON: string(paramsJSON),
		Mean:       sum.Mean,
		Median:     sum.Median,
		Min:        sum.Min,
		Max:        sum.Max,
		Gini:       sum.Gini,
		TopDecile:  sum.TopDecile,
		TalentCorr: sum.TalentCorr,
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`INSERT INTO runs
		(id, created_at, label, seed, n, steps, params_json,
		 mean, median, min, max, gini, top_decile, talent_corr)
		VALUES (:id, :created_at, :label, :seed, :n, :steps, :params_json,
		 :mean, :median, :min, :max, :gini, :top_decile, :talent_corr)`, rec)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO run_capital
		(run_id, idx, talent, initial_capital, final_capital)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	initial := res.Capital[0]
	for i := range res.Final {
		if _, err := stmt.Exec(rec.ID, i, res.Talent[i], initial[i], res.Final[i]); err != nil {
			return "", fmt.Errorf("insert capital %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("run archived", "id", rec.ID, "label", label, "individuals", rec.N)
	return rec.ID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	return runs, err
}

// GetRun retrieves a single run by ID.
func (db *DB) GetRun(id string) (RunRecord, error) {
	var rec RunRecord
	err := db.conn.Get(&rec, "SELECT * FROM runs WHERE id = ?", id)
	if err != nil {
		return rec, fmt.Errorf("get run %s: %w", id, err)
	}
	return rec, nil
}

// LoadRunCapital returns the per-individual outcomes of a run, ordered by index.
func (db *DB) LoadRunCapital(id string) ([]CapitalRow, error) {
	var rows []CapitalRow
	err := db.conn.Select(&rows,
		"SELECT idx, talent, initial_capital, final_capital FROM run_capital WHERE run_id = ? ORDER BY idx",
		id,
	)
	return rows, err
}
