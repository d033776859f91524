package profile

import (
	"github.com/google/uuid"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
)

// EnsureIDs assigns a fresh id to every link and highlight that arrived
// without one. Ids are assigned by the system, never user-supplied on create;
// existing ids are kept so updates stay stable across saves.
func EnsureIDs(doc model.ProfileDocument) model.ProfileDocument {
	for i := range doc.Links {
		if doc.Links[i].ID == "" {
			doc.Links[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Highlights {
		if doc.Highlights[i].ID == "" {
			doc.Highlights[i].ID = uuid.NewString()
		}
	}
	return doc
}

// CarryIDs fills id-less list items from the stored list at the same
// position. A client resending the same full-list patch then lands on the
// ids minted for it on the first save instead of getting fresh ones, so
// applying a patch twice produces the same document. An id already used
// elsewhere in the incoming list is never carried.
func CarryIDs(current model.ProfileDocument, doc model.ProfileDocument) model.ProfileDocument {
	used := make(map[string]struct{}, len(doc.Links)+len(doc.Highlights))
	for _, link := range doc.Links {
		if link.ID != "" {
			used[link.ID] = struct{}{}
		}
	}
	for _, highlight := range doc.Highlights {
		if highlight.ID != "" {
			used[highlight.ID] = struct{}{}
		}
	}

	for i := range doc.Links {
		if doc.Links[i].ID != "" || i >= len(current.Links) {
			continue
		}
		if _, taken := used[current.Links[i].ID]; taken {
			continue
		}
		doc.Links[i].ID = current.Links[i].ID
		used[doc.Links[i].ID] = struct{}{}
	}
	for i := range doc.Highlights {
		if doc.Highlights[i].ID != "" || i >= len(current.Highlights) {
			continue
		}
		if _, taken := used[current.Highlights[i].ID]; taken {
			continue
		}
		doc.Highlights[i].ID = current.Highlights[i].ID
		used[doc.Highlights[i].ID] = struct{}{}
	}

	return doc
}
