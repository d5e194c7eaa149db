package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		domain.MailQueue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// notifyChange tells the other API instances about a write. A failed publish
// is only logged; watchers pick the change up on their next reload.
func (h *Handler) notifyChange(collection, id string, op domain.ChangeOp) {
	if h.metrics != nil {
		h.metrics.ObserveChange(collection)
	}
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.notifier.Publish(ctx, collection, id, op); err != nil {
		slog.Error("failed to publish change", "collection", collection, "id", id, "op", op, "error", err)
	}
}
