package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

type Profile interface {
	Create(ctx context.Context, profile model.Profile) (*model.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindByUsername(ctx context.Context, username string) (*model.Profile, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Profile, error)
	UsernameOwner(ctx context.Context, username string) (uuid.UUID, error)
	UpdateByUserID(ctx context.Context, userID uuid.UUID, username string, doc model.ProfileDocument) (*model.Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsWithUsername(ctx context.Context, username string) (bool, error)
}

type PostgresRepository struct {
	Profile
	User
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Profile: newProfileRepo(db),
		User:    newUserRepo(db),
	}
}
