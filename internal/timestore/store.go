package timestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"srtsync/internal/config"
)

// Store manages sync state persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the state database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.StateDir, "srtsync.db"))
}

// OpenPath opens the database at an explicit location.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveAnchors upserts the single saved-times row.
func (s *Store) SaveAnchors(ctx context.Context, times AnchorTimes) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO saved_times (id, from1_ms, to1_ms, from2_ms, to2_ms, updated_at)
         VALUES (1, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             from1_ms = excluded.from1_ms,
             to1_ms = excluded.to1_ms,
             from2_ms = excluded.from2_ms,
             to2_ms = excluded.to2_ms,
             updated_at = excluded.updated_at`,
		times.From1Ms,
		times.To1Ms,
		times.From2Ms,
		times.To2Ms,
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save anchors: %w", err)
	}
	return nil
}

// LastAnchors returns the saved timestamp pairs, or nil when none exist.
func (s *Store) LastAnchors(ctx context.Context) (*AnchorTimes, error) {
	row := s.db.QueryRowContext(ctx, `SELECT from1_ms, to1_ms, from2_ms, to2_ms, updated_at FROM saved_times WHERE id = 1`)

	var times AnchorTimes
	var updatedRaw string
	err := row.Scan(&times.From1Ms, &times.To1Ms, &times.From2Ms, &times.To2Ms, &updatedRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load anchors: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		times.UpdatedAt = parsed
	}
	return &times, nil
}

// RecordSync appends a completed sync to the history.
func (s *Store) RecordSync(ctx context.Context, record SyncRecord) (*SyncRecord, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sync_history (subtitle_path, media_path, mode, scale, offset_ms, confidence, output_path, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.SubtitlePath,
		nullableString(record.MediaPath),
		record.Mode,
		record.Scale,
		record.OffsetMs,
		record.Confidence,
		nullableString(record.OutputPath),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("record sync: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	record.ID = id
	record.CreatedAt = now
	return &record, nil
}

// History returns the most recent sync records, newest first. A limit of
// zero or less returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]*SyncRecord, error) {
	query := `SELECT id, subtitle_path, media_path, mode, scale, offset_ms, confidence, output_path, created_at
        FROM sync_history ORDER BY id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []*SyncRecord
	for rows.Next() {
		var (
			record     SyncRecord
			mediaPath  sql.NullString
			outputPath sql.NullString
			createdRaw string
		)
		if err := rows.Scan(
			&record.ID,
			&record.SubtitlePath,
			&mediaPath,
			&record.Mode,
			&record.Scale,
			&record.OffsetMs,
			&record.Confidence,
			&outputPath,
			&createdRaw,
		); err != nil {
			return nil, err
		}
		record.MediaPath = mediaPath.String
		record.OutputPath = outputPath.String
		if parsed, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
			record.CreatedAt = parsed
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
