package shipment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ShipmentDB struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	OfferID        uuid.UUID
	ShipmentNumber *string
	TrackingLink   *string
	DepartureDate  *time.Time
	ArrivalDate    *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

var shipmentColumnList = []string{
	"id", "order_id", "offer_id", "shipment_number", "tracking_link",
	"departure_date", "arrival_date", "status", "created_at", "updated_at",
}

var shipmentColumns = strings.Join(shipmentColumnList, ", ")

func shipmentColumnsOf(alias string) []string {
	cols := make([]string, len(shipmentColumnList))
	for i, c := range shipmentColumnList {
		cols[i] = alias + "." + c
	}
	return cols
}

func (s *ShipmentDB) scanTargets() []interface{} {
	return []interface{}{
		&s.ID,
		&s.OrderID,
		&s.OfferID,
		&s.ShipmentNumber,
		&s.TrackingLink,
		&s.DepartureDate,
		&s.ArrivalDate,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}

// RecipientDB участник заказа, которому уходит уведомление.
type RecipientDB struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}
