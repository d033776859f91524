package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfilePhotoKind string

const (
	PhotoKindURL         ProfilePhotoKind = "url"
	PhotoKindPlaceholder ProfilePhotoKind = "placeholder"
	PhotoKindUploaded    ProfilePhotoKind = "uploaded"
)

// ProfilePhoto is a tagged variant: for "url" and "uploaded" the value is an
// absolute URL, for "placeholder" it is a short initials token.
type ProfilePhoto struct {
	Kind  ProfilePhotoKind `json:"type"`
	Value string           `json:"value"`
}

type ProfileLayout string

const (
	LayoutDefault ProfileLayout = "default"
	Layout1       ProfileLayout = "layout1"
	Layout2       ProfileLayout = "layout2"
	Layout3       ProfileLayout = "layout3"
	Layout4       ProfileLayout = "layout4"
)

type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeAuto  ThemeMode = "auto"
)

// ProfileTheme references a static theme pack by id; the pack itself is not
// part of the mutable document state.
type ProfileTheme struct {
	PackID string    `json:"packId"`
	Mode   ThemeMode `json:"mode"`
}

type Link struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	URL          string `json:"url"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
	Favicon      string `json:"favicon,omitempty"`
}

type Highlight struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
	URL          string   `json:"url,omitempty"`
	DisplayOrder int      `json:"displayOrder"`
	Category     string   `json:"category,omitempty"`
}

// ProfileDocument is the full public-facing profile state. Layout and Theme
// are optional on the wire; absent values resolve to defaults at read time so
// old documents stay valid without migration.
type ProfileDocument struct {
	Username     string        `json:"username"`
	DisplayName  string        `json:"displayName"`
	Bio          string        `json:"bio"`
	ProfilePhoto ProfilePhoto  `json:"profilePhoto"`
	Links        []Link        `json:"links"`
	Highlights   []Highlight   `json:"highlights"`
	Layout       ProfileLayout `json:"layout,omitempty"`
	Theme        *ProfileTheme `json:"theme,omitempty"`
}

// Profile is the persisted row: one document per account, owner reference
// immutable once set.
type Profile struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Username  string          `json:"username"`
	Document  ProfileDocument `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
