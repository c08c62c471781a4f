// Package models defines the server-side records persisted in Postgres and
// the small enums that drive their state machines.
package models

import "time"

type ProductType string

const (
	ProductTypeMedicineGeneral ProductType = "medicine_general"
	ProductTypeBiologic        ProductType = "biologic"
	ProductTypeDeviceMedical   ProductType = "device_medical"
)

// Valid reports whether t is one of the known product types.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeMedicineGeneral, ProductTypeBiologic, ProductTypeDeviceMedical:
		return true
	}
	return false
}

type DossierStatus string

const (
	DossierDraft      DossierStatus = "draft"
	DossierInProgress DossierStatus = "in_progress"
	DossierReady      DossierStatus = "ready"
	DossierSubmitted  DossierStatus = "submitted"
)

var dossierRank = map[DossierStatus]int{
	DossierDraft:      0,
	DossierInProgress: 1,
	DossierReady:      2,
	DossierSubmitted:  3,
}

// CanAdvanceTo reports whether moving from s to next is a forward move.
// Staying on the same status is not an advance. Reverting to draft is a
// separate, explicit operation and is not covered here.
func (s DossierStatus) CanAdvanceTo(next DossierStatus) bool {
	from, ok1 := dossierRank[s]
	to, ok2 := dossierRank[next]
	return ok1 && ok2 && to > from
}

// Dossier is one regulatory submission for one product.
type Dossier struct {
	ID           string
	LabID        string
	ProductName  string
	Manufacturer string
	ProductType  ProductType
	TemplateID   string
	Status       DossierStatus
	CreatedBy    string
	CreatedAt    time.Time
}
