// Package store is the thin persistence collaborator: a single
// questions table, recreated on every upload the way the reference
// implementation's init_db() does, with ordered read-back for the
// review UI. It is intentionally dumb — the extraction pipeline does
// not query it, only appends to it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jeemock/mcqextract/internal/mcqparse"
)

// Store wraps a single SQLite database holding one upload's worth of
// extracted questions.
type Store struct {
	db *sql.DB
}

// Open connects to (creating if necessary) the SQLite file at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE questions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	question         TEXT    NOT NULL,
	option_a         TEXT,
	option_b         TEXT,
	option_c         TEXT,
	option_d         TEXT,
	option_a_image   TEXT,
	option_b_image   TEXT,
	option_c_image   TEXT,
	option_d_image   TEXT,
	has_diagram      INTEGER DEFAULT 0,
	image_path       TEXT,
	question_image   TEXT
)`

// Reset drops and recreates the questions table — each upload replaces
// whatever the previous upload left behind, matching this service's
// single-document-at-a-time review workflow.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS questions"); err != nil {
		return fmt.Errorf("store: drop questions table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: create questions table: %w", err)
	}
	return nil
}

// Row is one persisted question, including its screenshot path and
// database id — the shape the review UI reads back.
type Row struct {
	ID              int64
	Question        string
	OptionA         string
	OptionB         string
	OptionC         string
	OptionD         string
	OptionAImage    string
	OptionBImage    string
	OptionCImage    string
	OptionDImage    string
	HasDiagram      bool
	ImagePath       string
	QuestionImage   string
}

// InsertAll appends every record to the questions table in order,
// pairing each with its already-rendered question screenshot path
// (screenshots[i] may be empty when cropping failed for that question).
func (s *Store) InsertAll(ctx context.Context, records []mcqparse.Record, screenshots []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions
			(question, option_a, option_b, option_c, option_d,
			 option_a_image, option_b_image, option_c_image, option_d_image,
			 has_diagram, image_path, question_image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		shot := ""
		if i < len(screenshots) {
			shot = screenshots[i]
		}
		if _, err := stmt.ExecContext(ctx,
			r.Question, r.OptionA, r.OptionB, r.OptionC, r.OptionD,
			r.OptionAImage, r.OptionBImage, r.OptionCImage, r.OptionDImage,
			boolToInt(r.HasDiagram), r.ImagePath, shot,
		); err != nil {
			return fmt.Errorf("store: insert question %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// All reads every question back in insertion order.
func (s *Store) All(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, option_a, option_b, option_c, option_d,
		       option_a_image, option_b_image, option_c_image, option_d_image,
		       has_diagram, image_path, question_image
		FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: query questions: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var hasDiagram int
		if err := rows.Scan(
			&r.ID, &r.Question, &r.OptionA, &r.OptionB, &r.OptionC, &r.OptionD,
			&r.OptionAImage, &r.OptionBImage, &r.OptionCImage, &r.OptionDImage,
			&hasDiagram, &r.ImagePath, &r.QuestionImage,
		); err != nil {
			return nil, fmt.Errorf("store: scan question row: %w", err)
		}
		r.HasDiagram = hasDiagram != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
