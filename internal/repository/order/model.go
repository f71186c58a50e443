package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderDB struct {
	ID           uuid.UUID
	Code         string
	SenderID     uuid.UUID
	ReceiverID   uuid.UUID
	FromPort     string
	ToPort       string
	DeliveryType string
	Incoterm     string
	LoadDate     *time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const orderColumns = "id, code, sender_id, receiver_id, from_port, to_port, delivery_type, incoterm, load_date, status, created_at, updated_at"

func (o *OrderDB) scanTargets() []interface{} {
	return []interface{}{
		&o.ID,
		&o.Code,
		&o.SenderID,
		&o.ReceiverID,
		&o.FromPort,
		&o.ToPort,
		&o.DeliveryType,
		&o.Incoterm,
		&o.LoadDate,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}

type OrderCargoDB struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Unit      string
	Quantity  int
	CreatedAt time.Time
}
