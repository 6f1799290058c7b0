package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"battlesim/internal/report/migrations"
)

var ErrNotFound = errors.New("summary not found")

// Store persists batch summaries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the SQLite file at path and applies the
// embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	for _, name := range files {
		body, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := sqlDB.Exec(string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSummary inserts sum, assigning an id and creation time when unset.
func (s *Store) SaveSummary(ctx context.Context, sum Summary) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Summary{}, fmt.Errorf("storage is not configured")
	}
	if sum.Runs <= 0 {
		return Summary{}, fmt.Errorf("summary has no runs")
	}
	if sum.ID == "" {
		sum.ID = uuid.NewString()
	}
	if sum.CreatedAt.IsZero() {
		sum.CreatedAt = time.Now().UTC()
	}
	team := sum.Team
	if team == nil {
		team = []string{}
	}
	teamJSON, err := json.Marshal(team)
	if err != nil {
		return Summary{}, fmt.Errorf("encode team: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO battle_summaries (
		   id, stage_id, team_json, seed, runs, wins, total_turns, total_duration, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.ID, sum.StageID, string(teamJSON), sum.Seed, sum.Runs, sum.Wins,
		sum.TotalTurns, sum.TotalDuration, toMillis(sum.CreatedAt),
	)
	if err != nil {
		return Summary{}, fmt.Errorf("insert summary: %w", err)
	}
	sum.CreatedAt = fromMillis(toMillis(sum.CreatedAt))
	return sum, nil
}

const selectColumns = `id, stage_id, team_json, seed, runs, wins, total_turns, total_duration, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (Summary, error) {
	var (
		sum       Summary
		teamJSON  string
		createdAt int64
	)
	if err := row.Scan(&sum.ID, &sum.StageID, &teamJSON, &sum.Seed, &sum.Runs, &sum.Wins,
		&sum.TotalTurns, &sum.TotalDuration, &createdAt); err != nil {
		return Summary{}, err
	}
	if err := json.Unmarshal([]byte(teamJSON), &sum.Team); err != nil {
		return Summary{}, fmt.Errorf("decode team: %w", err)
	}
	sum.CreatedAt = fromMillis(createdAt)
	return sum, nil
}

func (s *Store) GetSummary(ctx context.Context, id string) (Summary, error) {
	if s == nil || s.sqlDB == nil {
		return Summary{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM battle_summaries WHERE id = ?`, id)
	sum, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, ErrNotFound
	}
	if err != nil {
		return Summary{}, fmt.Errorf("get summary: %w", err)
	}
	return sum, nil
}

// ListSummaries returns up to limit summaries, newest first.
func (s *Store) ListSummaries(ctx context.Context, limit int) ([]Summary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM battle_summaries ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return out, nil
}
