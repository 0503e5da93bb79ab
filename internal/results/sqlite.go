package results

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/stereoglue/bench.report/internal/timeutil"
)

// DB keeps benchmark runs in a SQLite file so charts can be rebuilt long
// after the harness output has been cleaned up.
type DB struct {
	*sql.DB
	clock timeutil.Clock
}

//go:embed schema.sql
var schemaSQL string

// OpenDB opens the run database at path, creating the file and schema on
// first use.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply run schema: %w", err)
	}
	return &DB{DB: db, clock: timeutil.RealClock{}}, nil
}

// RunInfo describes one stored run.
type RunInfo struct {
	RunID   string
	Dataset string
	Metric  string
	Created time.Time
}

// InsertRun stores a validated result set and returns the id assigned to
// the run.
func (db *DB) InsertRun(rs *ResultSet) (string, error) {
	if err := rs.Validate(); err != nil {
		return "", fmt.Errorf("invalid results: %w", err)
	}

	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO benchmark_runs (run_id, dataset, metric, x_label, y_label, created_unix_nanos)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, rs.Dataset, rs.Metric, rs.XLabel, rs.YLabel, db.clock.Now().UnixNano(),
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO benchmark_points (run_id, method, seq, x, y) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rs.Series {
		for i, pt := range s.Points {
			if _, err := stmt.Exec(runID, s.Method, i, pt.X, pt.Y); err != nil {
				return "", fmt.Errorf("failed to insert points for %q: %w", s.Method, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// LoadRun reads a stored run back into a ResultSet. Series come back in
// the order they were inserted.
func (db *DB) LoadRun(runID string) (*ResultSet, error) {
	rs := &ResultSet{}
	err := db.QueryRow(
		`SELECT dataset, metric, x_label, y_label FROM benchmark_runs WHERE run_id = ?`,
		runID,
	).Scan(&rs.Dataset, &rs.Metric, &rs.XLabel, &rs.YLabel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	rows, err := db.Query(
		`SELECT method, x, y FROM benchmark_points WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load points for run %s: %w", runID, err)
	}
	defer rows.Close()

	var cur *Series
	for rows.Next() {
		var method string
		var pt Point
		if err := rows.Scan(&method, &pt.X, &pt.Y); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		if cur == nil || cur.Method != method {
			rs.Series = append(rs.Series, Series{Method: method})
			cur = &rs.Series[len(rs.Series)-1]
		}
		cur.Points = append(cur.Points, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points for run %s: %w", runID, err)
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("stored run %s is invalid: %w", runID, err)
	}
	return rs, nil
}

// LatestRun returns the id of the newest run recorded for a dataset and
// metric.
func (db *DB) LatestRun(dataset, metric string) (string, error) {
	var runID string
	err := db.QueryRow(
		`SELECT run_id FROM benchmark_runs WHERE dataset = ? AND metric = ?
		 ORDER BY created_unix_nanos DESC LIMIT 1`,
		dataset, metric,
	).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("no runs recorded for dataset %q metric %q", dataset, metric)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query latest run: %w", err)
	}
	return runID, nil
}

// ListRuns returns every stored run, newest first.
func (db *DB) ListRuns() ([]RunInfo, error) {
	rows, err := db.Query(
		`SELECT run_id, dataset, metric, created_unix_nanos FROM benchmark_runs
		 ORDER BY created_unix_nanos DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var nanos int64
		if err := rows.Scan(&info.RunID, &info.Dataset, &info.Metric, &nanos); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		info.Created = time.Unix(0, nanos)
		runs = append(runs, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}
