package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository"
)

type registryService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newRegistryService(logger *zap.Logger, repo *repository.Repository) Registry {
	return &registryService{
		logger: logger,
		repo:   repo,
	}
}

// NormalizeUsername lowercases a raw name and strips everything outside
// [a-z0-9_-]. Every availability check and reservation runs on the normalized
// form; the registry never sees a raw name.
func NormalizeUsername(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsAvailable reports whether username is free, or claimed solely by
// excludeUserID (so a user editing their own unchanged name sees it as
// available). This is a UX hint: the final write is still guarded by the
// unique constraint on profiles.username.
func (s *registryService) IsAvailable(ctx context.Context, username string, excludeUserID uuid.UUID) (bool, error) {
	username = NormalizeUsername(username)

	ownerID, err := s.repo.Postgres.Profile.UsernameOwner(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return true, nil
		}

		s.logger.Sugar().Errorf("failed to look up username(%s) owner in postgres: %s", username, err.Error())
		return false, ErrInternal
	}

	return ownerID == excludeUserID, nil
}
