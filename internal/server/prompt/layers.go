package prompt

import (
	"fmt"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/stages"
)

func System() Segment {
	return Segment{Layer: LayerSystem, Text: strings.Join([]string{
		"You are a regulatory affairs auditor reviewing a sanitary registration dossier.",
		"Judge only what the supplied documents show. Do not assume facts that are not in the text.",
		"When a requirement cannot be verified from the documents, report it as an observation and say what is missing.",
		"Answer with a single JSON object and nothing else.",
	}, "\n")}
}

func StageContext(stage stages.Stage, dc DossierContext) Segment {
	var b strings.Builder
	fmt.Fprintf(&b, "## Stage: %s (%s)\n", stage.Name, stage.Code)
	if stage.Description != "" {
		fmt.Fprintf(&b, "%s\n", stage.Description)
	}
	fmt.Fprintf(&b, "\nProduct: %s\n", dc.ProductName)
	if dc.Manufacturer != "" {
		fmt.Fprintf(&b, "Manufacturer: %s\n", dc.Manufacturer)
	}
	fmt.Fprintf(&b, "Product type: %s\n", dc.ProductType)
	if len(stage.Requirements) > 0 {
		b.WriteString("\nRequirements for this stage:\n")
		for i, r := range stage.Requirements {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r)
		}
	}
	return Segment{Layer: LayerStageContext, Text: strings.TrimRight(b.String(), "\n")}
}

// FileClassification lists the files with the checklist item each one was
// uploaded for, followed by their text.
func FileClassification(files []File, items []*models.DossierItem) Segment {
	byID := make(map[string]*models.DossierItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	var b strings.Builder
	b.WriteString("## Documents\n")
	for i, f := range files {
		label := "extra document, not bound to a checklist item"
		if it, ok := byID[f.ItemID]; ok {
			label = fmt.Sprintf("checklist item %s %s: %s", it.ID, it.Code, it.Title)
		} else if f.ItemID != "" {
			label = fmt.Sprintf("checklist item %s (outside this stage)", f.ItemID)
		}
		fmt.Fprintf(&b, "\n### File %d: %s\n", i+1, f.FileName)
		fmt.Fprintf(&b, "Document id: %s\nClassified as: %s\n", f.DocumentID, label)
		if f.Pages > 0 {
			fmt.Fprintf(&b, "Pages: %d\n", f.Pages)
		}
		fmt.Fprintf(&b, "<<<\n%s\n>>>\n", strings.TrimSpace(f.Text))
	}
	return Segment{Layer: LayerFileClassification, Text: strings.TrimRight(b.String(), "\n")}
}

func MultiFile(stage stages.Stage, files []File) Segment {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.FileName)
	}
	return Segment{Layer: LayerMultiFile, Text: fmt.Sprintf(
		"## Joint evaluation\nStage %s is evaluated over all of its files together (%s). "+
			"A requirement is met when any file satisfies it, unless the files contradict each other.",
		stage.Code, strings.Join(names, ", "))}
}

// CrossValidation asks the model to compare facts that must agree between
// files. It is only meaningful with two or more files.
func CrossValidation(files []File) Segment {
	return Segment{Layer: LayerCrossValidation, Text: fmt.Sprintf(
		"## Cross-validation\nCompare the %d files against each other. Product name, manufacturer, site, "+
			"formula and dates must be consistent. Report every inconsistency as an observation on the "+
			"affected checklist item and name the files involved.", len(files))}
}

func OutputFormat(items []*models.DossierItem) Segment {
	var b strings.Builder
	b.WriteString("## Output format\n")
	b.WriteString(`Return exactly: {"items":[{"item_id":"<id>","verdict":"pass|fail|observation","observation":"<text>"}]}`)
	b.WriteString("\nUse only these item ids, one entry per item:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s (%s: %s)\n", it.ID, it.Code, it.Title)
	}
	b.WriteString("The observation is required when the verdict is fail or observation. Add no other fields.")
	return Segment{Layer: LayerOutputFormat, Text: b.String()}
}
