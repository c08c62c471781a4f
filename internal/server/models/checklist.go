package models

// ChecklistTemplate is a versioned set of requirements for a product type.
// Only one template per product type is active at a time.
type ChecklistTemplate struct {
	ID          string
	ProductType ProductType
	Version     int
	Active      bool
}

// ChecklistItem is one requirement inside a template.
type ChecklistItem struct {
	ID          string
	TemplateID  string
	Code        string
	Title       string
	Description string
	Stage       string
	// MultiFile marks items that can only be judged by reading several
	// documents together.
	MultiFile bool
	SortOrder int
}

type ItemStatus string

const (
	ItemPending  ItemStatus = "pending"
	ItemUploaded ItemStatus = "uploaded"
	ItemInReview ItemStatus = "in_review"
	ItemApproved ItemStatus = "approved"
	ItemObserved ItemStatus = "observed"
)

// Reviewable reports whether the reconciler may move an item out of s.
// Items already judged stay reviewable so a later audit can overturn them.
func (s ItemStatus) Reviewable() bool {
	switch s {
	case ItemUploaded, ItemInReview, ItemApproved, ItemObserved:
		return true
	}
	return false
}

// DossierItem is a ChecklistItem instantiated for a dossier. The checklist
// fields are joined in on read so callers do not need a second lookup.
type DossierItem struct {
	ID              string
	DossierID       string
	ChecklistItemID string
	Status          ItemStatus
	Observation     string

	Code        string
	Title       string
	Description string
	Stage       string
	MultiFile   bool
	SortOrder   int
}
