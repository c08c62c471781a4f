package models

import "time"

const (
	UploadPending   = "pending"
	UploadCompleted = "completed"
)

// Document is a file uploaded for a dossier. DossierItemID is empty for
// documents uploaded outside the checklist ("extra" scope).
type Document struct {
	ID            string
	DossierID     string
	DossierItemID string
	UploadedBy    string
	FileName      string
	MimeType      string
	StorageKey    string
	SizeBytes     int64
	UploadStatus  string
	UploadedAt    time.Time
}

// Extra reports whether the document is not attached to a checklist item.
func (d *Document) Extra() bool { return d.DossierItemID == "" }

// UploadTicket is handed to a client so it can PUT the file body straight
// into object storage.
type UploadTicket struct {
	DocumentID string
	StorageKey string
	URL        string
}
