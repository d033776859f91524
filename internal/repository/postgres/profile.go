package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

const MAX_RECENT_LIMIT = 50

type profileRepo struct {
	db *pgxpool.Pool
}

func newProfileRepo(db *pgxpool.Pool) Profile {
	return &profileRepo{
		db: db,
	}
}

func (r *profileRepo) Create(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	docJSON, err := json.Marshal(profile.Document)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(
		ctx,
		"INSERT INTO profiles(id, user_id, username, profile_data, created_at, updated_at) VALUES($1, $2, $3, $4, $5, $6)",
		profile.ID,
		profile.UserID,
		profile.Username,
		docJSON,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
	SELECT p.id, p.user_id, p.username, p.profile_data, p.created_at, p.updated_at
	FROM profiles p
	WHERE p.user_id = $1
	`, userID))
}

func (r *profileRepo) FindByUsername(ctx context.Context, username string) (*model.Profile, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
	SELECT p.id, p.user_id, p.username, p.profile_data, p.created_at, p.updated_at
	FROM profiles p
	WHERE p.username = $1
	`, username))
}

func (r *profileRepo) FindRecent(ctx context.Context, limit int) ([]*model.Profile, error) {
	if limit > MAX_RECENT_LIMIT {
		limit = MAX_RECENT_LIMIT
	}

	rows, err := r.db.Query(ctx, `
	SELECT p.id, p.user_id, p.username, p.profile_data, p.created_at, p.updated_at
	FROM profiles p
	ORDER BY p.created_at DESC
	LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		profile, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// UsernameOwner returns the user_id claiming username, or pgx.ErrNoRows when
// the name is free.
func (r *profileRepo) UsernameOwner(ctx context.Context, username string) (uuid.UUID, error) {
	var ownerID uuid.UUID
	if err := r.db.QueryRow(ctx, "SELECT p.user_id FROM profiles p WHERE p.username = $1", username).Scan(&ownerID); err != nil {
		return uuid.Nil, err
	}

	return ownerID, nil
}

// UpdateByUserID replaces the whole document in a single row write keyed by
// the immutable owner id, so a concurrent update can never interleave partial
// field sets. The unique constraint on username guards reservation races.
func (r *profileRepo) UpdateByUserID(ctx context.Context, userID uuid.UUID, username string, doc model.ProfileDocument) (*model.Profile, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return r.scanOne(r.db.QueryRow(ctx, `
	UPDATE profiles
	SET username = $2, profile_data = $3, updated_at = $4
	WHERE user_id = $1
	RETURNING id, user_id, username, profile_data, created_at, updated_at
	`, userID, username, docJSON, time.Now()))
}

func (r *profileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM profiles WHERE user_id = $1", userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *profileRepo) scanOne(row pgx.Row) (*model.Profile, error) {
	var (
		profile model.Profile
		docJSON []byte
	)
	if err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Username,
		&docJSON,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(docJSON, &profile.Document); err != nil {
		return nil, err
	}

	return &profile, nil
}
