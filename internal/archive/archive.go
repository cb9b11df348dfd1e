// Package archive persists generation run history and argument
// fingerprints in SQLite, so repeated runs can report what they produced
// and skip texts an earlier run already emitted.
package archive

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/peircelogic/arggen/internal/logging"
)

// ErrRunNotFound marks a lookup for a run id never recorded.
var ErrRunNotFound = errors.New("run not found")

// Archive wraps the SQLite store.
type Archive struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Run is one recorded generation run.
type Run struct {
	ID        string
	Language  string
	Count     int
	Pairs     bool
	Seed      uint64
	Preset    string
	CreatedAt time.Time
}

// migrations apply in order; schema_migrations tracks the last applied
// version so old databases upgrade in place.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		language TEXT NOT NULL,
		count INTEGER NOT NULL,
		pairs INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		preset TEXT,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS argument_hashes (
		hash TEXT PRIMARY KEY,
		run_id TEXT NOT NULL REFERENCES runs(id),
		rule TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_argument_hashes_run ON argument_hashes(run_id);`,
}

// Open opens or creates the archive database at path, creating parent
// directories and applying pending migrations.
func Open(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	a := &Archive{db: db, logger: logging.Component("archive")}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) migrate() error {
	if _, err := a.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`); err != nil {
		return fmt.Errorf("creating migration table: %w", err)
	}

	var version int
	err := a.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := a.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
		if _, err := a.db.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
		a.logger.Debug().Int("version", i+1).Msg("applied migration")
	}
	return nil
}

// RecordRun inserts a run row and returns its id.
func (a *Archive) RecordRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	pairs := 0
	if run.Pairs {
		pairs = 1
	}
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO runs (id, language, count, pairs, seed, preset, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Language, run.Count, pairs, int64(run.Seed), run.Preset, run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return run.ID, nil
}

// GetRun fetches one run by id.
func (a *Archive) GetRun(ctx context.Context, id string) (Run, error) {
	var run Run
	var pairs int
	var seed int64
	var createdAt string
	err := a.db.QueryRowContext(ctx, `
		SELECT id, language, count, pairs, seed, COALESCE(preset, ''), created_at
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Language, &run.Count, &pairs, &seed, &run.Preset, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}

	run.Pairs = pairs != 0
	run.Seed = uint64(seed)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = t
	}
	return run, nil
}

// HashText fingerprints an argument text for dedup tracking.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// SeenHash reports whether a fingerprint was recorded by any run.
func (a *Archive) SeenHash(ctx context.Context, hash string) (bool, error) {
	var one int
	err := a.db.QueryRowContext(ctx, `SELECT 1 FROM argument_hashes WHERE hash = ?`, hash).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking hash: %w", err)
	}
	return true, nil
}

// MarkHashes records fingerprints for a run in one transaction.
// Fingerprints already present are left under their original run.
func (a *Archive) MarkHashes(ctx context.Context, runID string, hashes map[string]string) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO argument_hashes (hash, run_id, rule, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for hash, rule := range hashes {
		if _, err := stmt.ExecContext(ctx, hash, runID, rule, now); err != nil {
			return fmt.Errorf("inserting hash: %w", err)
		}
	}
	return tx.Commit()
}

// Stats summarizes archive contents.
type Stats struct {
	Runs      int
	Arguments int
	PerRule   map[string]int
	Oldest    time.Time
	Newest    time.Time
}

// Stats reports run and fingerprint counts.
func (a *Archive) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{PerRule: make(map[string]int)}

	if err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&stats.Runs); err != nil {
		return Stats{}, fmt.Errorf("counting runs: %w", err)
	}
	if err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM argument_hashes`).Scan(&stats.Arguments); err != nil {
		return Stats{}, fmt.Errorf("counting hashes: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, `SELECT rule, COUNT(*) FROM argument_hashes GROUP BY rule`)
	if err != nil {
		return Stats{}, fmt.Errorf("counting per rule: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rule string
		var count int
		if err := rows.Scan(&rule, &count); err != nil {
			return Stats{}, fmt.Errorf("scanning rule count: %w", err)
		}
		stats.PerRule[rule] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterating rule counts: %w", err)
	}

	var oldest, newest sql.NullString
	err = a.db.QueryRowContext(ctx, `SELECT MIN(created_at), MAX(created_at) FROM runs`).Scan(&oldest, &newest)
	if err != nil {
		return Stats{}, fmt.Errorf("reading run range: %w", err)
	}
	if oldest.Valid {
		if t, err := time.Parse(time.RFC3339, oldest.String); err == nil {
			stats.Oldest = t
		}
	}
	if newest.Valid {
		if t, err := time.Parse(time.RFC3339, newest.String); err == nil {
			stats.Newest = t
		}
	}
	return stats, nil
}

// Prune deletes runs and their fingerprints older than before. It
// returns the number of runs removed.
func (a *Archive) Prune(ctx context.Context, before time.Time) (int64, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	cutoff := before.UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM argument_hashes WHERE run_id IN (SELECT id FROM runs WHERE created_at < ?)
	`, cutoff); err != nil {
		return 0, fmt.Errorf("deleting old hashes: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old runs: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	a.logger.Info().Int64("runs", removed).Time("before", before).Msg("pruned archive")
	return removed, nil
}
