package profile

import (
	"strings"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/theme"
)

// DefaultDocument is the minimal valid document created at registration:
// display name mirrors the username, a placeholder photo shows the first
// initial, and both lists start empty.
func DefaultDocument(username string) model.ProfileDocument {
	return model.ProfileDocument{
		Username:    username,
		DisplayName: username,
		Bio:         "",
		ProfilePhoto: model.ProfilePhoto{
			Kind:  model.PhotoKindPlaceholder,
			Value: placeholderInitial(username),
		},
		Links:      []model.Link{},
		Highlights: []model.Highlight{},
	}
}

// ApplyReadDefaults resolves absent layout and theme to their defaults at
// read time, so documents persisted before either field existed stay valid
// without migration.
func ApplyReadDefaults(doc model.ProfileDocument) model.ProfileDocument {
	if doc.Layout == "" {
		doc.Layout = model.LayoutDefault
	}
	if doc.Theme == nil {
		doc.Theme = &model.ProfileTheme{
			PackID: theme.Default().ID,
			Mode:   model.ThemeModeAuto,
		}
	}
	return doc
}

func placeholderInitial(username string) string {
	if username == "" {
		return "?"
	}
	return strings.ToUpper(username[:1])
}
