package profile

import (
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/theme"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 30

	displayNameMaxLen = 50
	bioMaxLen         = 160
	labelMaxLen       = 50
	titleMaxLen       = 100
	descriptionMaxLen = 500
	placeholderMaxLen = 4
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validate checks a candidate document against the full schema. It is pure
// and total: it never panics, performs no I/O, and returns a nil slice only
// for a fully valid document. Callers must validate the complete document
// after a merge, never a partial update on its own, because displayOrder
// contiguity depends on whole-list shape.
func Validate(doc model.ProfileDocument) ValidationErrors {
	var errs ValidationErrors

	validateUsername(&errs, "username", doc.Username)

	if n := utf8.RuneCountInString(doc.DisplayName); n < 1 || n > displayNameMaxLen {
		errs.add("displayName", "must be between 1 and %d characters", displayNameMaxLen)
	}
	if utf8.RuneCountInString(doc.Bio) > bioMaxLen {
		errs.add("bio", "must be at most %d characters", bioMaxLen)
	}

	validatePhoto(&errs, doc.ProfilePhoto)
	validateLinks(&errs, doc.Links)
	validateHighlights(&errs, doc.Highlights)

	switch doc.Layout {
	case "", model.LayoutDefault, model.Layout1, model.Layout2, model.Layout3, model.Layout4:
	default:
		errs.add("layout", "unknown layout %q", doc.Layout)
	}

	if doc.Theme != nil {
		if !theme.Exists(doc.Theme.PackID) {
			errs.add("theme.packId", "unknown theme pack %q", doc.Theme.PackID)
		}
		switch doc.Theme.Mode {
		case model.ThemeModeLight, model.ThemeModeDark, model.ThemeModeAuto:
		default:
			errs.add("theme.mode", "must be one of light, dark, auto")
		}
	}

	return errs
}

// ValidateUsername applies only the username rules, for callers that check a
// name before a full document exists (registration, availability checks).
func ValidateUsername(username string) ValidationErrors {
	var errs ValidationErrors
	validateUsername(&errs, "username", username)
	return errs
}

func validateUsername(errs *ValidationErrors, field string, username string) {
	if n := utf8.RuneCountInString(username); n < UsernameMinLen || n > UsernameMaxLen {
		errs.add(field, "must be between %d and %d characters", UsernameMinLen, UsernameMaxLen)
		return
	}
	if !usernameRegex.MatchString(username) {
		errs.add(field, "can only contain letters, numbers, underscores, and hyphens")
	}
}

func validatePhoto(errs *ValidationErrors, photo model.ProfilePhoto) {
	switch photo.Kind {
	case model.PhotoKindURL, model.PhotoKindUploaded:
		if !isAbsoluteURL(photo.Value) {
			errs.add("profilePhoto.value", "must be an absolute URL")
		}
	case model.PhotoKindPlaceholder:
		if n := utf8.RuneCountInString(photo.Value); n < 1 || n > placeholderMaxLen {
			errs.add("profilePhoto.value", "placeholder must be between 1 and %d characters", placeholderMaxLen)
		}
	default:
		errs.add("profilePhoto.type", "must be one of url, placeholder, uploaded")
	}
}

func validateLinks(errs *ValidationErrors, links []model.Link) {
	seenIDs := make(map[string]struct{}, len(links))
	for i, link := range links {
		field := func(name string) string { return fmt.Sprintf("links[%d].%s", i, name) }

		if link.ID == "" {
			errs.add(field("id"), "is required")
		} else if _, dup := seenIDs[link.ID]; dup {
			errs.add(field("id"), "duplicate id %q", link.ID)
		}
		seenIDs[link.ID] = struct{}{}

		if n := utf8.RuneCountInString(link.Label); n < 1 || n > labelMaxLen {
			errs.add(field("label"), "must be between 1 and %d characters", labelMaxLen)
		}
		if !isAbsoluteURL(link.URL) {
			errs.add(field("url"), "must be an absolute URL")
		}
		if link.Favicon != "" && !isAbsoluteURL(link.Favicon) {
			errs.add(field("favicon"), "must be an absolute URL")
		}
		if link.DisplayOrder != i {
			errs.add(field("displayOrder"), "must be %d, got %d", i, link.DisplayOrder)
		}
	}
}

func validateHighlights(errs *ValidationErrors, highlights []model.Highlight) {
	seenIDs := make(map[string]struct{}, len(highlights))
	for i, highlight := range highlights {
		field := func(name string) string { return fmt.Sprintf("highlights[%d].%s", i, name) }

		if highlight.ID == "" {
			errs.add(field("id"), "is required")
		} else if _, dup := seenIDs[highlight.ID]; dup {
			errs.add(field("id"), "duplicate id %q", highlight.ID)
		}
		seenIDs[highlight.ID] = struct{}{}

		if n := utf8.RuneCountInString(highlight.Title); n < 1 || n > titleMaxLen {
			errs.add(field("title"), "must be between 1 and %d characters", titleMaxLen)
		}
		if utf8.RuneCountInString(highlight.Description) > descriptionMaxLen {
			errs.add(field("description"), "must be at most %d characters", descriptionMaxLen)
		}
		for j, image := range highlight.Images {
			if !isAbsoluteURL(image) {
				errs.add(fmt.Sprintf("highlights[%d].images[%d]", i, j), "must be an absolute URL")
			}
		}
		if highlight.URL != "" && !isAbsoluteURL(highlight.URL) {
			errs.add(field("url"), "must be an absolute URL")
		}
		if highlight.DisplayOrder != i {
			errs.add(field("displayOrder"), "must be %d, got %d", i, highlight.DisplayOrder)
		}
	}
}

// isAbsoluteURL reports whether raw parses as an absolute URL with a scheme
// and a host. Malformed input produces a field error upstream, never a panic.
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
