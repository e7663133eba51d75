package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"go-entrylevel-collector/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	url              TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	company          TEXT NOT NULL,
	location         TEXT NOT NULL,
	source           TEXT NOT NULL,
	captured_at      TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	employment_type  TEXT NOT NULL DEFAULT 'Other',
	salary           TEXT NOT NULL DEFAULT '',
	experience_level TEXT NOT NULL DEFAULT 'Entry Level',
	skills           TEXT NOT NULL DEFAULT '[]'
);`

// SQLiteStore persists job records in a single-writer file database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the jobs database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) FindByURL(ctx context.Context, url string) (*models.JobRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT url, title, company, location, source, captured_at,
       description, employment_type, salary, experience_level, skills
FROM jobs WHERE url = ?;`, url)

	var record models.JobRecord
	var capturedAt, skillsJSON string
	err := row.Scan(&record.URL, &record.Title, &record.Company, &record.Location,
		&record.Source, &capturedAt, &record.Description, &record.EmploymentType,
		&record.Salary, &record.ExperienceLevel, &skillsJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find job by url: %w", err)
	}

	record.CapturedAt, err = time.Parse(time.RFC3339Nano, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("decode captured_at: %w", err)
	}
	if err := json.Unmarshal([]byte(skillsJSON), &record.Skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}

	return &record, nil
}

func (s *SQLiteStore) Create(ctx context.Context, record *models.JobRecord) error {
	skillsJSON, err := json.Marshal(record.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO jobs (url, title, company, location, source, captured_at,
                  description, employment_type, salary, experience_level, skills)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		record.URL, record.Title, record.Company, record.Location, record.Source,
		record.CapturedAt.UTC().Format(time.RFC3339Nano), record.Description,
		record.EmploymentType, record.Salary, record.ExperienceLevel, string(skillsJSON))
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
