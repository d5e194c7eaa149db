// Package realtime fans out change notifications over Redis pub/sub so every
// API instance re-evaluates the dashboard as soon as a schedule is written.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

const Channel = "bay:changes"

type Notifier struct {
	rdb     *redis.Client
	channel string
}

func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{
		rdb:     rdb,
		channel: Channel,
	}
}

// Publish announces a write. Delivery is best-effort.
func (n *Notifier) Publish(ctx context.Context, collection, id string, op domain.ChangeOp) error {
	payload, err := Encode(domain.ChangeEvent{Collection: collection, ID: id, Op: op})
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, payload).Err()
}

// Subscribe yields change events until ctx is done. The returned channel is
// closed afterwards.
func (n *Notifier) Subscribe(ctx context.Context) (<-chan domain.ChangeEvent, error) {
	pubsub := n.rdb.Subscribe(ctx, n.channel)
	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	events := make(chan domain.ChangeEvent)
	go func() {
		defer close(events)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				event, err := Decode(msg.Payload)
				if err != nil {
					slog.Error("failed to decode change event", "payload", msg.Payload, "error", err)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func Encode(event domain.ChangeEvent) (string, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Decode(payload string) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	err := json.Unmarshal([]byte(payload), &event)
	return event, err
}

// IsScheduleChange reports whether event touches one of the schedule tables.
func IsScheduleChange(event domain.ChangeEvent) bool {
	for _, k := range domain.ScheduleKinds {
		if event.Collection == k.Collection {
			return true
		}
	}
	return false
}
