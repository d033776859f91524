package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

type GetUserDto struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func GetUserDtoFromUser(user model.User) *GetUserDto {
	return &GetUserDto{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
