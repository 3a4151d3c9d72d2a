package service

import (
	"context"
	"errors"
	"strings"

	"prep_tracker/internal/models"
	"prep_tracker/internal/repository"
)

// ErrEmptyField rejects blank required input before the store is touched.
var ErrEmptyField = errors.New("required field is empty")

type ProblemService struct {
	problems repository.Problems
}

func NewProblemService(repo repository.Problems) *ProblemService {
	return &ProblemService{problems: repo}
}

var _ ProblemTracker = (*ProblemService)(nil)

// List returns all of the owner's problems in insertion order.
func (s *ProblemService) List(ctx context.Context, owner string) ([]models.Problem, error) {
	return s.problems.ListByOwner(ctx, owner)
}

// Add validates and inserts a new problem with status Unsolved.
// No duplicate detection across topics or problem titles.
func (s *ProblemService) Add(ctx context.Context, owner, topic, problem string) (int, error) {
	topic = strings.TrimSpace(topic)
	problem = strings.TrimSpace(problem)
	if topic == "" || problem == "" {
		return 0, ErrEmptyField
	}
	return s.problems.Insert(ctx, owner, topic, problem)
}

// ToggleStatus flips Solved<->Unsolved. An id that does not belong to owner
// is a silent no-op, so ids cannot be probed across users.
func (s *ProblemService) ToggleStatus(ctx context.Context, owner string, id int) error {
	return s.problems.ToggleStatus(ctx, owner, id)
}

// Delete removes the owner's problem; foreign or missing ids are a no-op.
func (s *ProblemService) Delete(ctx context.Context, owner string, id int) error {
	return s.problems.Delete(ctx, owner, id)
}

// Progress derives total/solved/percent for the owner. An empty set is the
// defined degenerate case (0, 0, 0), not an error.
func (s *ProblemService) Progress(ctx context.Context, owner string) (models.Progress, error) {
	total, solved, err := s.problems.CountByOwner(ctx, owner)
	if err != nil {
		return models.Progress{}, err
	}
	percent := 0
	if total > 0 {
		percent = solved * 100 / total
	}
	return models.Progress{Total: total, Solved: solved, Percent: percent}, nil
}
