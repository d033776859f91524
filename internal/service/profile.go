package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/profile"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/rabbitmq"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository/postgres"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository/redisrepo"
)

const (
	profileCacheTTL = time.Hour
	recentCacheTTL  = time.Minute * 5

	RECENT_PROFILES_LIMIT = 20
)

type profileService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	mq       *rabbitmq.MQConn
	registry Registry
}

func newProfileService(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn, registry Registry) Profile {
	return &profileService{
		logger:   logger,
		repo:     repo,
		mq:       mq,
		registry: registry,
	}
}

// Create builds the account's single profile document from defaults plus the
// optional initial patch, normalizes and validates it, and persists it. The
// unique constraints on username and user_id are the source of truth for
// conflicts; the availability pre-check only gives a friendlier error.
func (s *profileService) Create(ctx context.Context, userID uuid.UUID, username string, initial *dto.ProfilePatch) (*model.Profile, error) {
	username = NormalizeUsername(username)
	if errs := profile.ValidateUsername(username); len(errs) > 0 {
		return nil, errs
	}

	var patch dto.ProfilePatch
	if initial != nil {
		patch = *initial
	}
	// The canonical normalized name wins over whatever the initial data says.
	patch.Username = &username

	doc := profile.Merge(nil, patch)
	doc = profile.EnsureIDs(doc)
	doc = profile.Reconcile(doc)
	if errs := profile.Validate(doc); len(errs) > 0 {
		return nil, errs
	}

	available, err := s.registry.IsAvailable(ctx, username, userID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrUsernameTaken
	}

	created, err := s.repo.Postgres.Profile.Create(ctx, model.Profile{
		UserID:   userID,
		Username: username,
		Document: doc,
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, postgres.ProfilesUsernameConstraint) {
			return nil, ErrUsernameTaken
		}
		if postgres.IsUniqueViolation(err, postgres.ProfilesUserIDConstraint) {
			return nil, ErrProfileAlreadyExists
		}

		s.logger.Sugar().Errorf("failed to create profile for user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidateCaches(ctx, created.Username, "")
	s.publishEvent(rabbitmq.PROFILE_CREATED_QUEUE, created)

	return withReadDefaults(created), nil
}

func (s *profileService) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	found, err := s.repo.Postgres.Profile.FindByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return s.rebuildDefault(ctx, userID)
		}

		s.logger.Sugar().Errorf("failed to find profile for user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return withReadDefaults(found), nil
}

// rebuildDefault recreates the default document for an account that has no
// profile row. Registration writes the user and the profile separately, so a
// failure between the two leaves an orphaned account; the next authenticated
// read repairs it instead of returning NotFound forever.
func (s *profileService) rebuildDefault(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	user, err := s.repo.Postgres.User.FindByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	created, err := s.Create(ctx, userID, user.Username, nil)
	if err != nil {
		// Lost a race with a concurrent repair of the same account.
		if err == ErrProfileAlreadyExists {
			return s.FindByUserID(ctx, userID)
		}
		return nil, err
	}

	return created, nil
}

// FindByUsername is the public read path and goes through the cache first.
func (s *profileService) FindByUsername(ctx context.Context, username string) (*model.Profile, error) {
	username = NormalizeUsername(username)

	cached, err := redisrepo.Get[model.Profile](s.repo.Redis.Cache, ctx, redisrepo.ProfileByUsernameKey(username))
	if err == nil && cached != nil {
		return withReadDefaults(cached), nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get profile(%s) from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	found, err := s.repo.Postgres.Profile.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to find profile(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.ProfileByUsernameKey(username), found, profileCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set profile(%s) in redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	return withReadDefaults(found), nil
}

// FindRecent serves every request from one cached list of
// RECENT_PROFILES_LIMIT entries, so a write only has a single key to
// invalidate. Smaller limits slice the cached list.
func (s *profileService) FindRecent(ctx context.Context, limit int) ([]*model.Profile, error) {
	if limit <= 0 || limit > RECENT_PROFILES_LIMIT {
		limit = RECENT_PROFILES_LIMIT
	}

	cached, err := redisrepo.GetMany[model.Profile](s.repo.Redis.Cache, ctx, redisrepo.RECENT_PROFILES_KEY)
	if err == nil && cached != nil {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return withReadDefaultsMany(cached), nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get recent profiles from redis: %s", err.Error())
		return nil, ErrInternal
	}

	recent, err := s.repo.Postgres.Profile.FindRecent(ctx, RECENT_PROFILES_LIMIT)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find recent profiles in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.RECENT_PROFILES_KEY, recent, recentCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set recent profiles in redis: %s", err.Error())
		return nil, ErrInternal
	}

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return withReadDefaultsMany(recent), nil
}

// Update loads the current document, merges the patch, re-normalizes ordered
// collections, validates the complete result, and commits it as one row
// write. On any failure the stored document is left untouched. Applying the
// same patch twice yields the same document.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, patch dto.ProfilePatch) (*model.Profile, error) {
	current, err := s.repo.Postgres.Profile.FindByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to find profile for user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	if patch.Username != nil {
		normalized := NormalizeUsername(*patch.Username)
		patch.Username = &normalized
	}

	doc := profile.Merge(&current.Document, patch)
	doc = profile.CarryIDs(current.Document, doc)
	doc = profile.EnsureIDs(doc)
	doc = profile.Reconcile(doc)
	if errs := profile.Validate(doc); len(errs) > 0 {
		return nil, errs
	}

	// Availability is only re-checked when the name actually changed; the
	// unique constraint still guards the race on commit.
	if doc.Username != current.Username {
		available, err := s.registry.IsAvailable(ctx, doc.Username, userID)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, ErrUsernameTaken
		}
	}

	updated, err := s.repo.Postgres.Profile.UpdateByUserID(ctx, userID, doc.Username, doc)
	if err != nil {
		if postgres.IsUniqueViolation(err, postgres.ProfilesUsernameConstraint) {
			return nil, ErrUsernameTaken
		}

		s.logger.Sugar().Errorf("failed to update profile for user(%s) in postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidateCaches(ctx, updated.Username, current.Username)
	s.publishEvent(rabbitmq.PROFILE_UPDATED_QUEUE, updated)

	return withReadDefaults(updated), nil
}

// Clear is the administrative delete; profiles are never removed in the
// normal flow.
func (s *profileService) Clear(ctx context.Context, userID uuid.UUID) error {
	current, err := s.repo.Postgres.Profile.FindByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to find profile for user(%s) in postgres: %s", userID.String(), err.Error())
		return ErrInternal
	}

	if err := s.repo.Postgres.Profile.DeleteByUserID(ctx, userID); err != nil {
		if err == pgx.ErrNoRows {
			return ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to delete profile for user(%s) in postgres: %s", userID.String(), err.Error())
		return ErrInternal
	}

	s.invalidateCaches(ctx, current.Username, "")

	return nil
}

func (s *profileService) invalidateCaches(ctx context.Context, username string, previousUsername string) {
	keys := []string{
		redisrepo.ProfileByUsernameKey(username),
		redisrepo.RECENT_PROFILES_KEY,
	}
	if previousUsername != "" && previousUsername != username {
		keys = append(keys, redisrepo.ProfileByUsernameKey(previousUsername))
	}

	if err := s.repo.Redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate profile cache keys: %s", err.Error())
	}
}

// publishEvent hands the written profile to the favicon prefetch queue. This
// is best effort: a broker failure never fails the write that triggered it.
func (s *profileService) publishEvent(queue string, written *model.Profile) {
	if s.mq == nil {
		return
	}

	var linkURLs []string
	for _, link := range written.Document.Links {
		if link.Favicon == "" {
			linkURLs = append(linkURLs, link.URL)
		}
	}

	eventData, err := json.Marshal(&dto.ProfileEventDto{
		UserID:   written.UserID,
		Username: written.Username,
		LinkURLs: linkURLs,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal profile event: %s", err.Error())
		return
	}

	if err := s.mq.Publish(queue, eventData); err != nil {
		s.logger.Sugar().Errorf("failed to publish to rabbitmq queue(%s): %s", queue, err.Error())
	}
}

func withReadDefaults(p *model.Profile) *model.Profile {
	out := *p
	out.Document = profile.ApplyReadDefaults(out.Document)
	return &out
}

func withReadDefaultsMany(profiles []*model.Profile) []*model.Profile {
	out := make([]*model.Profile, len(profiles))
	for i, p := range profiles {
		out[i] = withReadDefaults(p)
	}
	return out
}
