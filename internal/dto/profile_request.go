package dto

import "github.com/proSamik/Mini-profile-Website-Builder/internal/model"

// ProfilePatch is a partial profile document: nil fields are left untouched by
// the merge, set fields replace the stored value. Links and highlights are
// always sent as the complete resulting list, never as per-element diffs.
type ProfilePatch struct {
	Username     *string              `json:"username,omitempty"`
	DisplayName  *string              `json:"displayName,omitempty"`
	Bio          *string              `json:"bio,omitempty"`
	ProfilePhoto *model.ProfilePhoto  `json:"profilePhoto,omitempty"`
	Links        *[]model.Link        `json:"links,omitempty"`
	Highlights   *[]model.Highlight   `json:"highlights,omitempty"`
	Layout       *model.ProfileLayout `json:"layout,omitempty"`
	Theme        *model.ProfileTheme  `json:"theme,omitempty"`
}
