package profile

import (
	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

// Merge combines a stored document with a partial update. Scalar fields are
// shallow-merged: a set patch field replaces the stored value, a nil field
// keeps it. ProfilePhoto and Theme are replaced wholesale when present, never
// deep-merged. Links and highlights replace the stored list in full: the
// caller has already applied add/update/delete/reorder locally and sends the
// complete resulting list.
//
// When current is nil (first save) missing fields fall back to the system
// defaults. Merge is pure and its output is NOT guaranteed valid; it must go
// through Validate before persistence.
func Merge(current *model.ProfileDocument, patch dto.ProfilePatch) model.ProfileDocument {
	var doc model.ProfileDocument
	if current != nil {
		doc = cloneDocument(*current)
	} else {
		username := ""
		if patch.Username != nil {
			username = *patch.Username
		}
		doc = DefaultDocument(username)
	}

	if patch.Username != nil {
		doc.Username = *patch.Username
	}
	if patch.DisplayName != nil {
		doc.DisplayName = *patch.DisplayName
	}
	if patch.Bio != nil {
		doc.Bio = *patch.Bio
	}
	if patch.ProfilePhoto != nil {
		doc.ProfilePhoto = *patch.ProfilePhoto
	}
	if patch.Links != nil {
		doc.Links = cloneLinks(*patch.Links)
	}
	if patch.Highlights != nil {
		doc.Highlights = cloneHighlights(*patch.Highlights)
	}
	if patch.Layout != nil {
		doc.Layout = *patch.Layout
	}
	if patch.Theme != nil {
		themeCopy := *patch.Theme
		doc.Theme = &themeCopy
	}

	return doc
}

// cloneDocument deep-copies the mutable parts so merging never aliases the
// caller's slices.
func cloneDocument(doc model.ProfileDocument) model.ProfileDocument {
	doc.Links = cloneLinks(doc.Links)
	doc.Highlights = cloneHighlights(doc.Highlights)
	if doc.Theme != nil {
		themeCopy := *doc.Theme
		doc.Theme = &themeCopy
	}
	return doc
}

func cloneLinks(links []model.Link) []model.Link {
	if links == nil {
		return nil
	}
	out := make([]model.Link, len(links))
	copy(out, links)
	return out
}

func cloneHighlights(highlights []model.Highlight) []model.Highlight {
	if highlights == nil {
		return nil
	}
	out := make([]model.Highlight, len(highlights))
	for i, highlight := range highlights {
		if highlight.Images != nil {
			images := make([]string, len(highlight.Images))
			copy(images, highlight.Images)
			highlight.Images = images
		}
		out[i] = highlight
	}
	return out
}
