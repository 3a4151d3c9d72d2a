package repository

import (
	"context"
	"database/sql"
	"fmt"

	"prep_tracker/internal/models"
)

type ProblemRepository struct {
	db *sql.DB
}

func NewProblemRepository(db *sql.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

var _ Problems = (*ProblemRepository)(nil)

const (
	selectProblemsByOwnerSQL = `SELECT id, username, topic, problem, status FROM dsa_problems WHERE username = ? ORDER BY id ASC`

	insertProblemSQL = `INSERT INTO dsa_problems (username, topic, problem, status) VALUES (?, ?, ?, ?)`

	// Flips Solved<->Unsolved in one statement so the flip and the owner
	// filter are atomic; a foreign or missing id simply affects zero rows.
	toggleProblemStatusSQL = `UPDATE dsa_problems SET status = CASE status WHEN 'Solved' THEN 'Unsolved' ELSE 'Solved' END WHERE id = ? AND username = ?`

	deleteProblemSQL = `DELETE FROM dsa_problems WHERE id = ? AND username = ?`

	countProblemsByOwnerSQL = `SELECT COUNT(*), COALESCE(SUM(CASE status WHEN 'Solved' THEN 1 ELSE 0 END), 0) FROM dsa_problems WHERE username = ?`
)

// ListByOwner returns the owner's problems in insertion order (id ASC).
func (r *ProblemRepository) ListByOwner(ctx context.Context, owner string) ([]models.Problem, error) {
	rows, err := r.db.QueryContext(ctx, selectProblemsByOwnerSQL, owner)
	if err != nil {
		return nil, fmt.Errorf("select problems for %q: %w", owner, err)
	}
	defer rows.Close()

	out := make([]models.Problem, 0, 16)
	for rows.Next() {
		var p models.Problem
		if err := rows.Scan(&p.ID, &p.Username, &p.Topic, &p.Problem, &p.Status); err != nil {
			return nil, fmt.Errorf("scan problem row for %q: %w", owner, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems for %q: %w", owner, err)
	}
	return out, nil
}

// Insert adds a new unsolved problem for owner and returns its ID.
func (r *ProblemRepository) Insert(ctx context.Context, owner, topic, problem string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertProblemSQL, owner, topic, problem, models.StatusUnsolved)
	if err != nil {
		return 0, fmt.Errorf("insert problem for %q: %w", owner, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for problem of %q: %w", owner, err)
	}
	return int(lastID), nil
}

// ToggleStatus flips the status of the owner's problem. A row that does not
// exist or belongs to someone else affects zero rows and is not an error.
func (r *ProblemRepository) ToggleStatus(ctx context.Context, owner string, id int) error {
	if _, err := r.db.ExecContext(ctx, toggleProblemStatusSQL, id, owner); err != nil {
		return fmt.Errorf("toggle problem %d for %q: %w", id, owner, err)
	}
	return nil
}

// Delete removes the owner's problem; same zero-row no-op rule as ToggleStatus.
func (r *ProblemRepository) Delete(ctx context.Context, owner string, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteProblemSQL, id, owner); err != nil {
		return fmt.Errorf("delete problem %d for %q: %w", id, owner, err)
	}
	return nil
}

// CountByOwner returns total and solved counts in a single aggregate query.
func (r *ProblemRepository) CountByOwner(ctx context.Context, owner string) (int, int, error) {
	var total, solved int
	err := r.db.QueryRowContext(ctx, countProblemsByOwnerSQL, owner).Scan(&total, &solved)
	if err != nil {
		return 0, 0, fmt.Errorf("count problems for %q: %w", owner, err)
	}
	return total, solved, nil
}
