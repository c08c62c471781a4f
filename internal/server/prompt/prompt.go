// Package prompt assembles the layered instructions sent to the model for one
// audit unit. Every layer is a pure function of its inputs, so identical
// stages, files and dossier context always produce byte-identical prompts.
package prompt

import (
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/cryptox"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/stages"
)

type Layer string

const (
	LayerSystem             Layer = "system"
	LayerStageContext       Layer = "stage_context"
	LayerFileClassification Layer = "file_classification"
	LayerMultiFile          Layer = "multi_file"
	LayerCrossValidation    Layer = "cross_validation"
	LayerOutputFormat       Layer = "output_format"
)

type Segment struct {
	Layer Layer
	Text  string
}

// File is one extracted document offered to the model. ItemID is empty for
// extras that are not bound to a checklist item.
type File struct {
	DocumentID string
	FileName   string
	ItemID     string
	Text       string
	Pages      int
}

func (f File) hasText() bool { return strings.TrimSpace(f.Text) != "" }

// DossierContext is what the model is told about the product under review.
// Items are the checklist items in scope for the unit. MultiFile is set when
// the caller already planned the stage as one joint unit; the flag may come
// from an item that is not in scope here.
type DossierContext struct {
	DossierID    string
	ProductName  string
	Manufacturer string
	ProductType  models.ProductType
	Items        []*models.DossierItem
	MultiFile    bool
}

// Bundle is a composed prompt. System and User are what the model adapter
// sends; Segments keep the layers for inspection.
type Bundle struct {
	Stage    string
	Segments []Segment
	System   string
	User     string
	ItemIDs  []string
	Hash     string
}

// Has reports whether the bundle includes layer.
func (b Bundle) Has(layer Layer) bool {
	for _, s := range b.Segments {
		if s.Layer == layer {
			return true
		}
	}
	return false
}

// Compose builds the prompt for stage over files, in the order given. Files
// without extracted text are left out; if none remain it fails with
// EmptyFileSet.
func Compose(stage stages.Stage, files []File, dc DossierContext) (Bundle, error) {
	usable := make([]File, 0, len(files))
	for _, f := range files {
		if f.hasText() {
			usable = append(usable, f)
		}
	}
	if len(usable) == 0 {
		return Bundle{}, errs.Errorf(errs.EmptyFileSet, "stage %s has no file with extracted text", stage.Code)
	}

	items := stageItems(stage.Code, dc.Items)

	segs := []Segment{
		System(),
		StageContext(stage, dc),
		FileClassification(usable, items),
	}
	if dc.MultiFile || stages.IsMultiFileStage(stage, dc.Items) {
		segs = append(segs, MultiFile(stage, usable))
	}
	if len(usable) >= 2 {
		segs = append(segs, CrossValidation(usable))
	}
	segs = append(segs, OutputFormat(items))

	b := Bundle{
		Stage:    stage.Code,
		Segments: segs,
		System:   segs[0].Text,
		ItemIDs:  itemIDs(items),
	}

	var user strings.Builder
	for i, s := range segs[1:] {
		if i > 0 {
			user.WriteString("\n\n")
		}
		user.WriteString(s.Text)
	}
	b.User = user.String()
	b.Hash = cryptox.ContentHash([]byte(b.System + "\x00" + b.User))

	return b, nil
}

func stageItems(stage string, all []*models.DossierItem) []*models.DossierItem {
	var out []*models.DossierItem
	for _, it := range all {
		if it.Stage == stage {
			out = append(out, it)
		}
	}
	return out
}

func itemIDs(items []*models.DossierItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
