package service

import (
	"context"

	"prep_tracker/internal/models"
	"prep_tracker/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// ProblemTracker exposes CRUD and derived progress over a user's problems.
// The owner always comes from the authenticated session, never from input.
type ProblemTracker interface {
	List(ctx context.Context, owner string) ([]models.Problem, error)
	Add(ctx context.Context, owner, topic, problem string) (int, error)
	ToggleStatus(ctx context.Context, owner string, id int) error
	Delete(ctx context.Context, owner string, id int) error
	Progress(ctx context.Context, owner string) (models.Progress, error)
}

// Root Service aggregates all sub-services.
type Service struct {
	Authorization
	ProblemTracker
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization:  NewAuthService(repos.Auth, authCfg),
		ProblemTracker: NewProblemService(repos.Problems),
	}
}
