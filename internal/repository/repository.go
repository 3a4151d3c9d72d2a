package repository

import (
	"context"
	"database/sql"

	"prep_tracker/internal/models"
	"prep_tracker/internal/repository/db"
)

type Authorization interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Problems is owner-scoped: every method filters by the owning username.
type Problems interface {
	ListByOwner(ctx context.Context, owner string) ([]models.Problem, error)
	Insert(ctx context.Context, owner, topic, problem string) (int, error)
	ToggleStatus(ctx context.Context, owner string, id int) error
	Delete(ctx context.Context, owner string, id int) error
	CountByOwner(ctx context.Context, owner string) (total, solved int, err error)
}

type Repository struct {
	Auth     Authorization
	Problems Problems
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(sqlDB),
		Problems: NewProblemRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and applies the schema idempotently.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
