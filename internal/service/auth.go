package service

import (
	"context"
	"os"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/profile"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository/postgres"
	"github.com/proSamik/Mini-profile-Website-Builder/pkg/utils"
)

const (
	accessTokenExpiry  = time.Hour * 3
	refreshTokenExpiry = time.Hour * 24 * 7 * 2
)

type authService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	profiles Profile
}

func newAuthService(logger *zap.Logger, repo *repository.Repository, profiles Profile) Auth {
	return &authService{
		logger:   logger,
		repo:     repo,
		profiles: profiles,
	}
}

// SignUp registers the account and creates its default profile document in
// the same call, so every account owns exactly one document from the start.
func (s *authService) SignUp(ctx context.Context, signUpDto dto.SignUpDto) (*dto.GetUserDto, *utils.JWTPair, error) {
	if signUpDto.Password != signUpDto.ConfirmPassword {
		return nil, nil, ErrPasswordsDontMatch
	}
	if !isStrongPassword(signUpDto.Password) {
		return nil, nil, ErrWeakPassword
	}

	username := NormalizeUsername(signUpDto.Username)
	if errs := profile.ValidateUsername(username); len(errs) > 0 {
		return nil, nil, errs
	}

	// UX pre-check; the unique constraint on users.username still guards
	// the race on insert.
	exists, err := s.repo.Postgres.User.ExistsWithUsername(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check username(%s) existence in postgres: %s", username, err.Error())
		return nil, nil, ErrInternal
	}
	if exists {
		return nil, nil, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(signUpDto.Password), 10)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return nil, nil, ErrInternal
	}

	createdUser, err := s.repo.Postgres.User.Create(ctx, model.User{
		Username:     username,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, postgres.UsersUsernameConstraint) {
			return nil, nil, ErrUsernameTaken
		}

		s.logger.Sugar().Errorf("failed to create user in postgres: %s", err.Error())
		return nil, nil, ErrInternal
	}

	if _, err := s.profiles.Create(ctx, createdUser.ID, username, nil); err != nil {
		s.logger.Sugar().Errorf("failed to create default profile for user(%s): %s", createdUser.ID.String(), err.Error())
		return nil, nil, err
	}

	jwtPair, err := s.generatePair(createdUser.ID)
	if err != nil {
		return nil, nil, err
	}

	return dto.GetUserDtoFromUser(*createdUser), jwtPair, nil
}

func (s *authService) SignIn(ctx context.Context, signInDto dto.SignInDto) (*dto.GetUserDto, *utils.JWTPair, error) {
	user, err := s.repo.Postgres.User.FindByUsername(ctx, NormalizeUsername(signInDto.Username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", signInDto.Username, err.Error())
		return nil, nil, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signInDto.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	jwtPair, err := s.generatePair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return dto.GetUserDtoFromUser(*user), jwtPair, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*utils.JWTPair, error) {
	claims, err := utils.DecodeJWT(refreshToken, []byte(os.Getenv("REFRESH_SECRET")))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.generatePair(user.ID)
}

func (s *authService) FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.Postgres.User.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *authService) generatePair(userID uuid.UUID) (*utils.JWTPair, error) {
	jwtPair, err := utils.GenerateJWTPair(utils.GenerateJWTPairDto{
		Method:       jwt.SigningMethodHS256,
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
		AccessClaims: jwt.MapClaims{
			"id": userID.String(),
		},
		AccessExpiry:  accessTokenExpiry,
		RefreshSecret: []byte(os.Getenv("REFRESH_SECRET")),
		RefreshClaims: jwt.MapClaims{
			"id": userID.String(),
		},
		RefreshExpiry: refreshTokenExpiry,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt pair: %s", err.Error())
		return nil, ErrInternal
	}

	return jwtPair, nil
}

func isStrongPassword(password string) bool {
	var hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	return hasDigit && hasSpecial
}
