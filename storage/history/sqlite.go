package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const keepLatest = 50

// Entry is one locally recorded submission.
type Entry struct {
	AssignmentID int
	Subject      string
	SubmittedAt  time.Time
}

// Store remembers submitted assignment ids in an embedded SQLite database so
// `results` without an argument can resolve the most recent one. It is a
// convenience cache only; its absence never blocks anything.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, errors.Wrap(err, "history: creating database directory")
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "history: opening database")
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS submissions (
		assignment_id INTEGER PRIMARY KEY,
		subject TEXT NOT NULL,
		submitted_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_at ON submissions(submitted_at);
	`
	_, err := s.db.Exec(query)
	return errors.Wrap(err, "history: creating schema")
}

func (s *Store) Close() error { return s.db.Close() }

// Record stores one submission and prunes the table to the latest entries.
func (s *Store) Record(ctx context.Context, assignmentID int, subject string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO submissions (assignment_id, subject, submitted_at) VALUES (?, ?, ?)`,
		assignmentID, subject, time.Now().UTC().Unix(),
	)
	if err != nil {
		return errors.Wrap(err, "history: recording submission")
	}
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM submissions WHERE assignment_id NOT IN (
			SELECT assignment_id FROM submissions ORDER BY submitted_at DESC, assignment_id DESC LIMIT ?
		)`,
		keepLatest,
	)
	return errors.Wrap(err, "history: pruning submissions")
}

// Latest returns the most recently recorded submission.
func (s *Store) Latest(ctx context.Context) (Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT assignment_id, subject, submitted_at FROM submissions
		 ORDER BY submitted_at DESC, assignment_id DESC LIMIT 1`,
	)
	var e Entry
	var at int64
	if err := row.Scan(&e.AssignmentID, &e.Subject, &at); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, errors.Wrap(err, "history: reading latest submission")
	}
	e.SubmittedAt = time.Unix(at, 0).UTC()
	return e, true, nil
}

// All returns the recorded submissions, newest first.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT assignment_id, subject, submitted_at FROM submissions
		 ORDER BY submitted_at DESC, assignment_id DESC`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "history: listing submissions")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.AssignmentID, &e.Subject, &at); err != nil {
			return nil, errors.Wrap(err, "history: scanning submission")
		}
		e.SubmittedAt = time.Unix(at, 0).UTC()
		entries = append(entries, e)
	}
	return entries, errors.Wrap(rows.Err(), "history: listing submissions")
}
