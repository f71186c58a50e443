package shipment_event

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"freight/internal/gateway/kafka/shipment_events"
	"freight/internal/service/notification"
	"freight/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "shipment.event"),
	)

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.event: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.ProcessMessage(sess.Context(), sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("shipment.event: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// marker часть сессии, которой достаточно для подтверждения сообщения.
type marker interface {
	MarkMessage(msg *sarama.ConsumerMessage, metadata string)
}

// ProcessMessage обрабатывает одно сообщение. Возвращает true, если ConsumeClaim
// должен завершиться: сообщение не подтверждено и будет прочитано повторно.
func (h *Handler) ProcessMessage(parent context.Context, sess marker, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(parent, h.messageProcessingTimeout)
	defer cancel()

	event, err := shipment_events.DecodeMessage(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("shipment.event handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("kind", event.Kind.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("shipment.event processing")

	sent, err := h.notificationService.DeliverShipmentEvent(ctx, event)
	if err != nil {
		switch {
		case parent.Err() != nil:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.event handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrShipmentGone):
			msgLog.Warn("shipment.event handler shipment no longer exists, skipping")

		case errors.Is(err, notification.ErrNoRecipients):
			msgLog.Warn("shipment.event handler order has no recipients, skipping")

		default:
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("sent", sent),
			).Error("shipment.event handler failed to deliver notifications")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("sent", sent),
	).Info("shipment.event: processed")

	sess.MarkMessage(message, "")
	return false
}
