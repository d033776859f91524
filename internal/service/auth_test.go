package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

func newTestAuthService(users *mockUserRepo, profiles *mockProfileRepo) Auth {
	repo := newTestRepo(profiles, users, missCache())
	registry := newRegistryService(zap.NewNop(), repo)
	return newAuthService(zap.NewNop(), repo, newProfileService(zap.NewNop(), repo, nil, registry))
}

func TestSignUpCreatesUserAndDefaultProfile(t *testing.T) {
	userID := uuid.New()
	users := new(mockUserRepo)
	users.On("ExistsWithUsername", mock.Anything, "sarahchen").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "sarahchen" && u.PasswordHash != ""
	})).Return(&model.User{ID: userID, Username: "sarahchen"}, nil)

	profiles := new(mockProfileRepo)
	profiles.On("UsernameOwner", mock.Anything, "sarahchen").Return(uuid.Nil, pgx.ErrNoRows)
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.UserID == userID && p.Username == "sarahchen"
	})).Return(storedProfile(userID, "sarahchen"), nil)

	svc := newTestAuthService(users, profiles)

	user, pair, err := svc.SignUp(context.Background(), dto.SignUpDto{
		Username:        "SarahChen",
		Password:        "hunter2!2024",
		ConfirmPassword: "hunter2!2024",
	})

	require.NoError(t, err)
	assert.Equal(t, "sarahchen", user.Username)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	profiles.AssertExpectations(t)
}

func TestSignUpRejectsMismatchedPasswords(t *testing.T) {
	svc := newTestAuthService(new(mockUserRepo), new(mockProfileRepo))

	_, _, err := svc.SignUp(context.Background(), dto.SignUpDto{
		Username:        "sarahchen",
		Password:        "hunter2!2024",
		ConfirmPassword: "different!2024",
	})

	assert.ErrorIs(t, err, ErrPasswordsDontMatch)
}

func TestSignUpRejectsWeakPassword(t *testing.T) {
	svc := newTestAuthService(new(mockUserRepo), new(mockProfileRepo))

	_, _, err := svc.SignUp(context.Background(), dto.SignUpDto{
		Username:        "sarahchen",
		Password:        "passwordonly",
		ConfirmPassword: "passwordonly",
	})

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSignUpRejectsExistingUsernameOnPrecheck(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsWithUsername", mock.Anything, "sarahchen").Return(true, nil)

	svc := newTestAuthService(users, new(mockProfileRepo))

	_, _, err := svc.SignUp(context.Background(), dto.SignUpDto{
		Username:        "SarahChen",
		Password:        "hunter2!2024",
		ConfirmPassword: "hunter2!2024",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUpTranslatesDuplicateUsername(t *testing.T) {
	// The pre-check missed the race; the unique constraint catches it.
	users := new(mockUserRepo)
	users.On("ExistsWithUsername", mock.Anything, "sarahchen").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil, &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_username_key",
	})

	svc := newTestAuthService(users, new(mockProfileRepo))

	_, _, err := svc.SignUp(context.Background(), dto.SignUpDto{
		Username:        "sarahchen",
		Password:        "hunter2!2024",
		ConfirmPassword: "hunter2!2024",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignInWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct!1"), 10)
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("FindByUsername", mock.Anything, "sarahchen").Return(&model.User{
		ID:           uuid.New(),
		Username:     "sarahchen",
		PasswordHash: string(hash),
	}, nil)

	svc := newTestAuthService(users, new(mockProfileRepo))

	_, _, err = svc.SignIn(context.Background(), dto.SignInDto{Username: "sarahchen", Password: "wrong!1"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, pgx.ErrNoRows)

	svc := newTestAuthService(users, new(mockProfileRepo))

	_, _, err := svc.SignIn(context.Background(), dto.SignInDto{Username: "ghost", Password: "whatever!1"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
