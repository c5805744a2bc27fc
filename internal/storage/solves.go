package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve kinds stored in the kind column.
const (
	KindSolve    = "solve"
	KindScramble = "scramble"
)

// Solve represents a recorded solve or scramble in the database.
type Solve struct {
	SolveID      string
	CreatedAt    time.Time
	Kind         string
	StateText    string
	ScrambleText *string
	SolutionText *string
	MoveCount    int
	DurationMs   *int64
	Notes        *string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create inserts a new record and returns its ID. state is the
// 54-character cube encoding the record describes; scramble, solution
// and notes may be empty.
func (r *SolveRepository) Create(kind, state, scramble, solution string, moveCount int, durationMs int64, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr, solutionPtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if solution != "" {
		solutionPtr = &solution
	}
	if notes != "" {
		notesPtr = &notes
	}
	var durationPtr *int64
	if durationMs > 0 {
		durationPtr = &durationMs
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, kind, state_text, scramble_text, solution_text, move_count, duration_ms, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), kind, state, scramblePtr, solutionPtr, moveCount, durationPtr, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. It returns nil when no record exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, kind, state_text, scramble_text, solution_text, move_count, duration_ms, notes
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent record.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent records, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, kind, state_text, scramble_text, solution_text, move_count, duration_ms, notes
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// Delete deletes a record.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// Count returns the total number of records.
func (r *SolveRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := row.Scan(
		&s.SolveID, &createdAtStr, &s.Kind, &s.StateText,
		&s.ScrambleText, &s.SolutionText, &s.MoveCount,
		&s.DurationMs, &s.Notes,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}
