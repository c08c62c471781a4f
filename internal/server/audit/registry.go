package audit

import (
	"context"
	"sort"
	"sync"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
)

// Registry tracks running audits so they can be cancelled by id.
type Registry struct {
	mu      sync.Mutex
	running map[string]context.CancelFunc
}

func NewRegistry() *Registry {
	return &Registry{running: make(map[string]context.CancelFunc)}
}

func (r *Registry) register(auditID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running[auditID] = cancel
}

func (r *Registry) unregister(auditID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.running, auditID)
}

// Cancel stops a running audit. Stages already reconciled are kept and the
// record is finalized as cancelled.
func (r *Registry) Cancel(auditID string) error {
	r.mu.Lock()
	cancel, ok := r.running[auditID]
	r.mu.Unlock()
	if !ok {
		return common.ErrAuditNotRunning
	}
	cancel()
	return nil
}

func (r *Registry) Running() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.running))
	for id := range r.running {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
