package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/rabbitmq"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/repository"
	"github.com/proSamik/Mini-profile-Website-Builder/pkg/utils"
)

type Profile interface {
	Create(ctx context.Context, userID uuid.UUID, username string, initial *dto.ProfilePatch) (*model.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindByUsername(ctx context.Context, username string) (*model.Profile, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, patch dto.ProfilePatch) (*model.Profile, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type Registry interface {
	IsAvailable(ctx context.Context, username string, excludeUserID uuid.UUID) (bool, error)
}

type Auth interface {
	SignUp(ctx context.Context, signUpDto dto.SignUpDto) (*dto.GetUserDto, *utils.JWTPair, error)
	SignIn(ctx context.Context, signInDto dto.SignInDto) (*dto.GetUserDto, *utils.JWTPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*utils.JWTPair, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type Service struct {
	Profile
	Registry
	Auth
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) *Service {
	registry := newRegistryService(logger, repo)
	profile := newProfileService(logger, repo, mq, registry)
	return &Service{
		Profile:  profile,
		Registry: registry,
		Auth:     newAuthService(logger, repo, profile),
	}
}
