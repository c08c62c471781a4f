package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"google.golang.org/api/option"
)

type publisher interface {
	Publish(ctx context.Context, msg *pubsub.Message) (string, error)
}

type topicPublisher struct {
	t *pubsub.Topic
}

func (p topicPublisher) Publish(ctx context.Context, msg *pubsub.Message) (string, error) {
	return p.t.Publish(ctx, msg).Get(ctx)
}

// newPubSubClient is a seam for tests.
var newPubSubClient = func(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID, opts...)
}

// PubSubNotifier publishes events as JSON to a Google Pub/Sub topic.
type PubSubNotifier struct {
	client *pubsub.Client
	topic  *pubsub.Topic
	pub    publisher
}

func NewPubSubNotifier(ctx context.Context, projectID, topic, credentialsFile string) (*PubSubNotifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := newPubSubClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub client: %w", err)
	}
	t := c.Topic(topic)
	return &PubSubNotifier{client: c, topic: t, pub: topicPublisher{t: t}}, nil
}

func (n *PubSubNotifier) AuditCompleted(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = n.pub.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event":      "audit.completed",
			"dossier_id": ev.DossierID,
			"status":     string(ev.Status),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNotificationNotDelivered, err)
	}
	return nil
}

func (n *PubSubNotifier) Close() error {
	if n.topic != nil {
		n.topic.Stop()
	}
	if n.client != nil {
		return n.client.Close()
	}
	return nil
}
