package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type fakePublisher struct {
	msg *pubsub.Message
	err error
}

func (f *fakePublisher) Publish(_ context.Context, msg *pubsub.Message) (string, error) {
	f.msg = msg
	return "m-1", f.err
}

func TestPubSubNotifier_Publishes(t *testing.T) {
	pub := &fakePublisher{}
	n := &PubSubNotifier{pub: pub}

	ev := Event{AuditID: "a1", DossierID: "d1", Status: models.AuditCompleted, ProblemsFound: 2}
	require.NoError(t, n.AuditCompleted(context.Background(), ev))

	require.NotNil(t, pub.msg)
	assert.Equal(t, "d1", pub.msg.Attributes["dossier_id"])
	assert.Equal(t, "completed", pub.msg.Attributes["status"])

	var got Event
	require.NoError(t, json.Unmarshal(pub.msg.Data, &got))
	assert.Equal(t, ev, got)
	assert.NoError(t, n.Close())
}

func TestPubSubNotifier_PublishError(t *testing.T) {
	n := &PubSubNotifier{pub: &fakePublisher{err: errors.New("unavailable")}}

	err := n.AuditCompleted(context.Background(), Event{AuditID: "a1"})
	assert.ErrorIs(t, err, common.ErrNotificationNotDelivered)
}

func TestNewPubSubNotifier_ClientError(t *testing.T) {
	orig := newPubSubClient
	t.Cleanup(func() { newPubSubClient = orig })

	var gotOpts int
	newPubSubClient = func(_ context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error) {
		gotOpts = len(opts)
		return nil, errors.New("no credentials")
	}

	_, err := NewPubSubNotifier(context.Background(), "proj", "audit-completed", "/etc/creds.json")
	require.Error(t, err)
	assert.Equal(t, 1, gotOpts)
}

type funcNotifier func(ctx context.Context, ev Event) error

func (f funcNotifier) AuditCompleted(ctx context.Context, ev Event) error { return f(ctx, ev) }

func TestFireAndForget_DetachedFromCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ctxErr error
	n := funcNotifier(func(ctx context.Context, ev Event) error {
		ctxErr = ctx.Err()
		return errors.New("ignored")
	})

	select {
	case <-FireAndForget(ctx, n, Event{AuditID: "a1"}, time.Second, logging.Nop{}):
	case <-time.After(time.Second):
		t.Fatal("notification did not finish")
	}
	assert.NoError(t, ctxErr)
}

func TestEventFromRecord(t *testing.T) {
	fin := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &models.AuditRecord{
		ID: "a1", DossierID: "d1", Status: models.AuditCancelled,
		StagesFound: 1, ProblemsFound: 3, TotalPages: 12, FinishedAt: &fin,
	}

	ev := EventFromRecord(rec)
	assert.Equal(t, fin, ev.FinishedAt)
	assert.Equal(t, 12, ev.TotalPages)
	assert.Equal(t, models.AuditCancelled, ev.Status)

	assert.NoError(t, NewLogNotifier(logging.Nop{}).AuditCompleted(context.Background(), ev))
}
