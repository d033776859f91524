package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

type GetProfileDto struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Username  string                `json:"username"`
	Document  model.ProfileDocument `json:"document"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func GetProfileDtoFromProfile(profile model.Profile) *GetProfileDto {
	return &GetProfileDto{
		ID:        profile.ID,
		UserID:    profile.UserID,
		Username:  profile.Username,
		Document:  profile.Document,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

// ProfileEventDto is published to the favicon prefetch queue after a write so
// a worker can resolve favicons for links that still lack one.
type ProfileEventDto struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	LinkURLs []string  `json:"link_urls"`
}
