package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/extract"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/llm"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/notify"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/prompt"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/reconcile"
)

type memStore struct {
	mu        sync.Mutex
	dossier   models.Dossier
	items     []*models.DossierItem
	docs      []*models.Document
	records   map[string]*models.AuditRecord
	progress  []models.AuditRecord
	finalized []models.AuditRecord
	applies   int
}

func newMemStore() *memStore {
	return &memStore{
		dossier: models.Dossier{
			ID: "d1", ProductName: "Paracetamol 500 mg", Manufacturer: "Acme",
			ProductType: models.ProductTypeMedicineGeneral, Status: models.DossierDraft,
		},
		records: make(map[string]*models.AuditRecord),
	}
}

func (s *memStore) addItem(id, stage string, status models.ItemStatus) {
	s.items = append(s.items, &models.DossierItem{
		ID: id, DossierID: "d1", Code: strings.ToUpper(id), Title: "Item " + id,
		Stage: stage, Status: status, SortOrder: len(s.items),
	})
}

func (s *memStore) addDoc(id, itemID, mime string) {
	s.docs = append(s.docs, &models.Document{
		ID: id, DossierID: "d1", DossierItemID: itemID, FileName: id + ".pdf",
		MimeType: mime, StorageKey: "key/" + id, UploadStatus: models.UploadCompleted,
	})
}

func (s *memStore) status(itemID string) models.ItemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == itemID {
			return it.Status
		}
	}
	return ""
}

func (s *memStore) LoadDossier(_ context.Context, dossierID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dossierID != s.dossier.ID {
		return nil, common.ErrorNotFound
	}
	d := s.dossier
	items := make([]*models.DossierItem, 0, len(s.items))
	for _, it := range s.items {
		cp := *it
		items = append(items, &cp)
	}
	return &Snapshot{Dossier: &d, Items: items, Documents: s.docs}, nil
}

func (s *memStore) CreateAudit(_ context.Context, rec *models.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = fmt.Sprintf("a%d", len(s.records)+1)
	rec.Status = models.AuditRunning
	rec.CreatedAt = time.Now()
	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

func (s *memStore) ApplyStage(_ context.Context, _ string, apply ApplyFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applies++
	current := make(map[string]models.ItemStatus, len(s.items))
	for _, it := range s.items {
		current[it.ID] = it.Status
	}
	transitions, err := apply(current)
	if err != nil {
		return err
	}
	for _, t := range transitions {
		for _, it := range s.items {
			if it.ID == t.ItemID {
				it.Status = t.To
				it.Observation = t.Observation
			}
		}
	}
	return nil
}

func (s *memStore) UpdateProgress(_ context.Context, rec *models.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, *rec)
	return nil
}

func (s *memStore) FinalizeAudit(_ context.Context, rec *models.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.records[rec.ID]
	if stored == nil || stored.Status != models.AuditRunning {
		return common.ErrAuditAlreadyTerminal
	}
	cp := *rec
	s.records[rec.ID] = &cp
	s.finalized = append(s.finalized, cp)
	return nil
}

func (s *memStore) AdvanceDossier(_ context.Context, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dossier.Status == models.DossierDraft {
		s.dossier.Status = models.DossierInProgress
	}
	for _, it := range s.items {
		if it.Status != models.ItemApproved {
			return nil
		}
	}
	if s.dossier.Status == models.DossierInProgress {
		s.dossier.Status = models.DossierReady
	}
	return nil
}

type memStorage map[string][]byte

func (m memStorage) Fetch(_ context.Context, key string) ([]byte, error) {
	b, ok := m[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return b, nil
}

// textExtractor treats any non-empty body as text; empty bodies go through
// the real extractor, which rejects them.
type textExtractor struct{}

func (textExtractor) Extract(ctx context.Context, in extract.Input, body []byte) (extract.Extraction, error) {
	if len(body) == 0 {
		return extract.NewDocumentExtractor(0).Extract(ctx, in, body)
	}
	return extract.Extraction{Text: string(body), PageCount: len(strings.Fields(string(body)))}, nil
}

// scriptedModel answers every in-scope item with the verdict configured for
// it and counts invocations per stage.
type scriptedModel struct {
	mu       sync.Mutex
	verdicts map[string]models.Verdict
	calls    map[string]int
	hook     func(ctx context.Context, p prompt.Bundle) error
	raw      string
}

func newScriptedModel(verdicts map[string]models.Verdict) *scriptedModel {
	return &scriptedModel{verdicts: verdicts, calls: make(map[string]int)}
}

func (m *scriptedModel) Invoke(ctx context.Context, p prompt.Bundle, _ llm.InvokeConfig) (string, error) {
	m.mu.Lock()
	m.calls[p.Stage]++
	m.mu.Unlock()

	if m.hook != nil {
		if err := m.hook(ctx, p); err != nil {
			return "", err
		}
	}
	if m.raw != "" {
		return m.raw, nil
	}

	out := reconcile.Output{Items: []reconcile.ItemVerdict{}}
	ids := append([]string(nil), p.ItemIDs...)
	sort.Strings(ids)
	for _, id := range ids {
		v, ok := m.verdicts[id]
		if !ok {
			continue
		}
		iv := reconcile.ItemVerdict{ItemID: id, Verdict: v}
		if v != models.VerdictPass {
			iv.Observation = "problem in " + id
		}
		out.Items = append(out.Items, iv)
	}
	b, err := json.Marshal(out)
	return string(b), err
}

func (m *scriptedModel) callCount(stage string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[stage]
}

type chanNotifier chan notify.Event

func (c chanNotifier) AuditCompleted(_ context.Context, ev notify.Event) error {
	c <- ev
	return nil
}
