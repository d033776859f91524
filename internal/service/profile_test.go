package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/profile"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository/postgres"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository/redisrepo"
)

func storedProfile(userID uuid.UUID, username string) *model.Profile {
	return &model.Profile{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Document: model.ProfileDocument{
			Username:     username,
			DisplayName:  "Sarah Chen",
			Bio:          "Designer",
			ProfilePhoto: model.ProfilePhoto{Kind: model.PhotoKindPlaceholder, Value: "S"},
			Links: []model.Link{
				{ID: "l1", Label: "GitHub", URL: "https://github.com/sarahchen", DisplayOrder: 0},
			},
			Highlights: []model.Highlight{},
		},
	}
}

func newTestProfileService(profiles postgres.Profile) Profile {
	repo := newTestRepo(profiles, nil, missCache())
	registry := newRegistryService(zap.NewNop(), repo)
	return newProfileService(zap.NewNop(), repo, nil, registry)
}

func TestCreateBuildsDefaultDocument(t *testing.T) {
	userID := uuid.New()
	profiles := new(mockProfileRepo)
	profiles.On("UsernameOwner", mock.Anything, "sarahchen").Return(uuid.Nil, pgx.ErrNoRows)
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.UserID == userID &&
			p.Username == "sarahchen" &&
			p.Document.Username == "sarahchen" &&
			p.Document.ProfilePhoto.Kind == model.PhotoKindPlaceholder &&
			len(p.Document.Links) == 0
	})).Return(storedProfile(userID, "sarahchen"), nil)

	svc := newTestProfileService(profiles)

	created, err := svc.Create(context.Background(), userID, "SarahChen", nil)

	require.NoError(t, err)
	assert.Equal(t, "sarahchen", created.Username)
	// Read-time defaults are resolved on the way out.
	assert.Equal(t, model.LayoutDefault, created.Document.Layout)
	require.NotNil(t, created.Document.Theme)
}

func TestCreateTranslatesUniqueViolationToConflict(t *testing.T) {
	// Two accounts race for "alex": the loser's insert hits the unique
	// constraint and must surface as the same conflict a pre-check gives.
	userID := uuid.New()
	profiles := new(mockProfileRepo)
	profiles.On("UsernameOwner", mock.Anything, "alex").Return(uuid.Nil, pgx.ErrNoRows)
	profiles.On("Create", mock.Anything, mock.Anything).Return(nil, &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "profiles_username_key",
	})

	svc := newTestProfileService(profiles)

	_, err := svc.Create(context.Background(), userID, "alex", nil)

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateRejectsTakenUsernameOnPrecheck(t *testing.T) {
	profiles := new(mockProfileRepo)
	profiles.On("UsernameOwner", mock.Anything, "sarahchen").Return(uuid.New(), nil)

	svc := newTestProfileService(profiles)

	_, err := svc.Create(context.Background(), uuid.New(), "sarahchen", nil)

	assert.ErrorIs(t, err, ErrUsernameTaken)
	profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRejectsInvalidInitialData(t *testing.T) {
	profiles := new(mockProfileRepo)

	svc := newTestProfileService(profiles)

	badLinks := []model.Link{{Label: "", URL: "not-a-url"}}
	_, err := svc.Create(context.Background(), uuid.New(), "sarahchen", &dto.ProfilePatch{Links: &badLinks})

	var validationErrs profile.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateBioOnlyLeavesEverythingElse(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.MatchedBy(func(doc model.ProfileDocument) bool {
		return doc.Bio == "new bio" &&
			doc.Username == "sarahchen" &&
			doc.DisplayName == "Sarah Chen" &&
			len(doc.Links) == 1 &&
			doc.Links[0].ID == "l1"
	})).Return(current, nil)

	svc := newTestProfileService(profiles)

	bio := "new bio"
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Bio: &bio})

	require.NoError(t, err)
	profiles.AssertExpectations(t)
}

func TestUpdateInvalidLinkWritesNothing(t *testing.T) {
	userID := uuid.New()
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(storedProfile(userID, "sarahchen"), nil)

	svc := newTestProfileService(profiles)

	badLinks := []model.Link{{ID: "l1", Label: "Bad", URL: "not-a-url"}}
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Links: &badLinks})

	var validationErrs profile.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "links[0].url", validationErrs[0].Field)
	profiles.AssertNotCalled(t, "UpdateByUserID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppendedHighlightGetsIDAndOrder(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")
	current.Document.Highlights = []model.Highlight{
		{ID: "h1", Title: "First", DisplayOrder: 0},
	}

	var written model.ProfileDocument
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.MatchedBy(func(doc model.ProfileDocument) bool {
		written = doc
		return true
	})).Return(current, nil)

	svc := newTestProfileService(profiles)

	// Caller appends a new highlight without id or displayOrder.
	patched := append([]model.Highlight{}, current.Document.Highlights...)
	patched = append(patched, model.Highlight{Title: "Second"})
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Highlights: &patched})

	require.NoError(t, err)
	require.Len(t, written.Highlights, 2)
	assert.NotEmpty(t, written.Highlights[1].ID)
	assert.Equal(t, 1, written.Highlights[1].DisplayOrder)
}

func TestUpdateUsernameChangeChecksAvailability(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UsernameOwner", mock.Anything, "newname").Return(uuid.New(), nil)

	svc := newTestProfileService(profiles)

	name := "NewName"
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Username: &name})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	profiles.AssertNotCalled(t, "UpdateByUserID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUnchangedUsernameSkipsAvailabilityCheck(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.Anything).Return(current, nil)

	svc := newTestProfileService(profiles)

	name := "sarahchen"
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Username: &name})

	require.NoError(t, err)
	profiles.AssertNotCalled(t, "UsernameOwner", mock.Anything, mock.Anything)
}

func TestUpdateIsIdempotent(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")

	var first, second model.ProfileDocument
	call := 0
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.MatchedBy(func(doc model.ProfileDocument) bool {
		call++
		if call == 1 {
			first = doc
		} else {
			second = doc
		}
		return true
	})).Return(current, nil)

	svc := newTestProfileService(profiles)

	bio := "same patch"
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Bio: &bio})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), userID, dto.ProfilePatch{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateSamePatchTwiceYieldsSameDocument(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")

	// The client resends the same full list with an id-less new highlight.
	patched := []model.Highlight{{Title: "Second"}}
	patch := dto.ProfilePatch{Highlights: &patched}

	var first model.ProfileDocument
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.MatchedBy(func(doc model.ProfileDocument) bool {
		first = doc
		return true
	})).Return(current, nil)

	svc := newTestProfileService(profiles)
	_, err := svc.Update(context.Background(), userID, patch)
	require.NoError(t, err)
	require.NotEmpty(t, first.Highlights[0].ID)

	// The second application starts from the document the first one wrote.
	after := *current
	after.Document = first

	var second model.ProfileDocument
	profiles = new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(&after, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.MatchedBy(func(doc model.ProfileDocument) bool {
		second = doc
		return true
	})).Return(&after, nil)

	svc = newTestProfileService(profiles)
	_, err = svc.Update(context.Background(), userID, patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindByUserIDRebuildsMissingProfile(t *testing.T) {
	// Registration writes the user and the profile separately; a failure in
	// between leaves an account with no document. The next authenticated
	// read must repair it.
	userID := uuid.New()
	profiles := new(mockProfileRepo)
	users := new(mockUserRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(nil, pgx.ErrNoRows).Once()
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Username: "sarahchen"}, nil)
	profiles.On("UsernameOwner", mock.Anything, "sarahchen").Return(uuid.Nil, pgx.ErrNoRows)
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.UserID == userID && p.Username == "sarahchen" && p.Document.DisplayName == "sarahchen"
	})).Return(storedProfile(userID, "sarahchen"), nil)

	repo := newTestRepo(profiles, users, missCache())
	registry := newRegistryService(zap.NewNop(), repo)
	svc := newProfileService(zap.NewNop(), repo, nil, registry)

	found, err := svc.FindByUserID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "sarahchen", found.Username)
	profiles.AssertExpectations(t)
}

func TestFindRecentSharesOneCacheKey(t *testing.T) {
	listing := []*model.Profile{
		storedProfile(uuid.New(), "sarahchen"),
		storedProfile(uuid.New(), "alex"),
	}

	profiles := new(mockProfileRepo)
	profiles.On("FindRecent", mock.Anything, RECENT_PROFILES_LIMIT).Return(listing, nil)

	cache := new(mockCache)
	cache.On("Get", mock.Anything, redisrepo.RECENT_PROFILES_KEY).Return(redis.NewStringResult("", redis.Nil))
	cache.On("SetJSON", mock.Anything, redisrepo.RECENT_PROFILES_KEY, mock.Anything, mock.Anything).Return(nil)

	repo := newTestRepo(profiles, nil, cache)
	registry := newRegistryService(zap.NewNop(), repo)
	svc := newProfileService(zap.NewNop(), repo, nil, registry)

	got, err := svc.FindRecent(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	cache.AssertExpectations(t)
}

func TestUpdateInvalidatesRecentListing(t *testing.T) {
	userID := uuid.New()
	current := storedProfile(userID, "sarahchen")
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(current, nil)
	profiles.On("UpdateByUserID", mock.Anything, userID, "sarahchen", mock.Anything).Return(current, nil)

	var deleted []string
	cache := new(mockCache)
	cache.On("Del", mock.Anything, mock.MatchedBy(func(keys []string) bool {
		deleted = keys
		return true
	})).Return(redis.NewIntResult(1, nil))

	repo := newTestRepo(profiles, nil, cache)
	registry := newRegistryService(zap.NewNop(), repo)
	svc := newProfileService(zap.NewNop(), repo, nil, registry)

	bio := "new bio"
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Bio: &bio})

	require.NoError(t, err)
	assert.Contains(t, deleted, redisrepo.RECENT_PROFILES_KEY)
	assert.Contains(t, deleted, redisrepo.ProfileByUsernameKey("sarahchen"))
}

func TestUpdateProfileNotFound(t *testing.T) {
	userID := uuid.New()
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(nil, pgx.ErrNoRows)

	svc := newTestProfileService(profiles)

	bio := "x"
	_, err := svc.Update(context.Background(), userID, dto.ProfilePatch{Bio: &bio})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFindByUsernameNotFound(t *testing.T) {
	profiles := new(mockProfileRepo)
	profiles.On("FindByUsername", mock.Anything, "ghost").Return(nil, pgx.ErrNoRows)

	svc := newTestProfileService(profiles)

	_, err := svc.FindByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestClearDeletesAndInvalidates(t *testing.T) {
	userID := uuid.New()
	profiles := new(mockProfileRepo)
	profiles.On("FindByUserID", mock.Anything, userID).Return(storedProfile(userID, "sarahchen"), nil)
	profiles.On("DeleteByUserID", mock.Anything, userID).Return(nil)

	svc := newTestProfileService(profiles)

	assert.NoError(t, svc.Clear(context.Background(), userID))
	profiles.AssertExpectations(t)
}
