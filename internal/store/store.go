// SPDX-License-Identifier: MIT

// Package store persists Monte Carlo runs in a single SQLite file.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/katalvlaran/epimob/intervention"
	"github.com/katalvlaran/epimob/montecarlo"
	"github.com/katalvlaran/epimob/segment"
	"github.com/katalvlaran/epimob/vulnerability"
)

// ErrNotFound is returned by GetRun for an unknown id.
var ErrNotFound = errors.New("store: run not found")

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario     TEXT    NOT NULL,
	variant      TEXT    NOT NULL,
	trials       INTEGER NOT NULL,
	seed         INTEGER NOT NULL,
	workers      INTEGER NOT NULL,
	created_at   TEXT    NOT NULL,
	hotspots     TEXT    NOT NULL,
	suburbs      TEXT    NOT NULL,
	abd_baseline REAL,
	vbd_baseline REAL,
	abd_excluded INTEGER NOT NULL,
	vbd_excluded INTEGER NOT NULL,
	abd_series   BLOB    NOT NULL,
	vbd_series   BLOB    NOT NULL
)`

// Run is one stored simulation. A NaN baseline is stored as NULL and read back as NaN.
type Run struct {
	ID        int64
	Scenario  string
	Variant   intervention.Variant
	Trials    int
	Seed      int64
	Workers   int
	CreatedAt time.Time
	Partition segment.Partition
	Baseline  map[vulnerability.Disease]float64
	Excluded  map[vulnerability.Disease]int
	Series    map[vulnerability.Disease][]float64
}

// Summary summarizes the stored ratio series of d.
func (r Run) Summary(d vulnerability.Disease) montecarlo.Summary {
	return montecarlo.Summarize(r.Series[d])
}

// Store is a SQLite-backed run log. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open creates (if needed) and opens the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "epimob.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Store{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// SaveRun stores res under scenario and returns the new run id.
func (s *Store) SaveRun(ctx context.Context, scenario string, res *montecarlo.Result) (int64, error) {
	hot, err := json.Marshal(orEmpty(res.Partition.Hotspots))
	if err != nil {
		return 0, fmt.Errorf("encode hotspots: %w", err)
	}
	sub, err := json.Marshal(orEmpty(res.Partition.Suburbs))
	if err != nil {
		return 0, fmt.Errorf("encode suburbs: %w", err)
	}
	abd, err := json.Marshal(orEmptyF(res.Series[vulnerability.ABD]))
	if err != nil {
		return 0, fmt.Errorf("encode ABD series: %w", err)
	}
	vbd, err := json.Marshal(orEmptyF(res.Series[vulnerability.VBD]))
	if err != nil {
		return 0, fmt.Errorf("encode VBD series: %w", err)
	}

	out, err := s.db.ExecContext(ctx, `INSERT INTO runs (
		scenario, variant, trials, seed, workers, created_at, hotspots, suburbs,
		abd_baseline, vbd_baseline, abd_excluded, vbd_excluded, abd_series, vbd_series
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scenario, res.Variant.String(), res.Trials, res.Seed, res.Workers,
		s.now().UTC().Format(time.RFC3339Nano), string(hot), string(sub),
		nullable(res.Baseline[vulnerability.ABD]), nullable(res.Baseline[vulnerability.VBD]),
		res.Excluded[vulnerability.ABD], res.Excluded[vulnerability.VBD], abd, vbd)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return out.LastInsertId()
}

const selectRun = `SELECT id, scenario, variant, trials, seed, workers, created_at,
	hotspots, suburbs, abd_baseline, vbd_baseline, abd_excluded, vbd_excluded,
	abd_series, vbd_series FROM runs`

// GetRun loads one run by id.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return r, err
}

// ListRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	q := selectRun + ` ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run. Deleting an unknown id returns ErrNotFound.
func (s *Store) DeleteRun(ctx context.Context, id int64) error {
	out, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r                  Run
		variant, created   string
		hot, sub           string
		abdBase, vbdBase   sql.NullFloat64
		abdExcl, vbdExcl   int
		abdSeries, vbdData []byte
	)
	if err := sc.Scan(&r.ID, &r.Scenario, &variant, &r.Trials, &r.Seed, &r.Workers, &created,
		&hot, &sub, &abdBase, &vbdBase, &abdExcl, &vbdExcl, &abdSeries, &vbdData); err != nil {
		return Run{}, err
	}
	v, err := intervention.ParseVariant(variant)
	if err != nil {
		return Run{}, fmt.Errorf("run %d: %w", r.ID, err)
	}
	r.Variant = v
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, fmt.Errorf("run %d: created_at: %w", r.ID, err)
	}
	if err = json.Unmarshal([]byte(hot), &r.Partition.Hotspots); err != nil {
		return Run{}, fmt.Errorf("run %d: decode hotspots: %w", r.ID, err)
	}
	if err = json.Unmarshal([]byte(sub), &r.Partition.Suburbs); err != nil {
		return Run{}, fmt.Errorf("run %d: decode suburbs: %w", r.ID, err)
	}
	r.Series = make(map[vulnerability.Disease][]float64, 2)
	var abd, vbd []float64
	if err = json.Unmarshal(abdSeries, &abd); err != nil {
		return Run{}, fmt.Errorf("run %d: decode ABD series: %w", r.ID, err)
	}
	if err = json.Unmarshal(vbdData, &vbd); err != nil {
		return Run{}, fmt.Errorf("run %d: decode VBD series: %w", r.ID, err)
	}
	r.Series[vulnerability.ABD], r.Series[vulnerability.VBD] = abd, vbd
	r.Baseline = map[vulnerability.Disease]float64{
		vulnerability.ABD: fromNullable(abdBase),
		vulnerability.VBD: fromNullable(vbdBase),
	}
	r.Excluded = map[vulnerability.Disease]int{
		vulnerability.ABD: abdExcl,
		vulnerability.VBD: vbdExcl,
	}
	return r, nil
}

func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

func orEmpty(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func orEmptyF(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}
