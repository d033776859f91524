package profile

import "github.com/proSamik/Mini-profile-Website-Builder/internal/model"

// The reconciler rewrites displayOrder to the 0-based index implied by slice
// order. The caller presents items in final desired order: an append goes at
// the end, a drag-reorder sends the new sequence, a delete sends the
// remainder. Reconciling an already-contiguous list is a no-op.

func ReconcileLinks(links []model.Link) []model.Link {
	out := make([]model.Link, len(links))
	for i, link := range links {
		link.DisplayOrder = i
		out[i] = link
	}
	return out
}

func ReconcileHighlights(highlights []model.Highlight) []model.Highlight {
	out := make([]model.Highlight, len(highlights))
	for i, highlight := range highlights {
		highlight.DisplayOrder = i
		highlight.Images = reconcileImages(highlight.Images)
		out[i] = highlight
	}
	return out
}

// Highlight images are plain URLs ordered by slice position; reconciling
// them copies the slice and drops empty entries left by deletes.
func reconcileImages(images []string) []string {
	if images == nil {
		return nil
	}
	out := make([]string, 0, len(images))
	for _, image := range images {
		if image == "" {
			continue
		}
		out = append(out, image)
	}
	return out
}

// Reconcile normalizes every ordered collection in a document.
func Reconcile(doc model.ProfileDocument) model.ProfileDocument {
	doc.Links = ReconcileLinks(doc.Links)
	doc.Highlights = ReconcileHighlights(doc.Highlights)
	return doc
}
