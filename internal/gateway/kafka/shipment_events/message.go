package shipment_events

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/entities"
)

// Message формат события в топике; воркер уведомлений разбирает его через DecodeMessage.
type Message struct {
	ShipmentID uuid.UUID `json:"shipment_id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(event entities.ShipmentEvent) Message {
	return Message{
		ShipmentID: event.ShipmentID,
		Kind:       event.Kind.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
}

func (m Message) ToDomain() entities.ShipmentEvent {
	return entities.ShipmentEvent{
		ShipmentID: m.ShipmentID,
		Kind:       entities.NotificationKind(m.Kind),
		Status:     entities.ShipmentStatus(m.Status),
		OccurredAt: m.OccurredAt,
	}
}
