package dto

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/entities"
)

type Shipment struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	OfferID        uuid.UUID `json:"offer_id"`
	ShipmentNumber *string   `json:"shipment_number"`
	TrackingLink   *string   `json:"tracking_link"`
	DepartureDate  *string   `json:"departure_date"`
	ArrivalDate    *string   `json:"arrival_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ShipmentUpdate пустая строка или null сбрасывают поле.
type ShipmentUpdate struct {
	ShipmentNumber Optional[string] `json:"shipment_number"`
	TrackingLink   Optional[string] `json:"tracking_link"`
	DepartureDate  Optional[string] `json:"departure_date"`
	ArrivalDate    Optional[string] `json:"arrival_date"`
	Status         *string          `json:"status"`
}

func FromShipment(s entities.Shipment) Shipment {
	return Shipment{
		ID:             s.ID,
		OrderID:        s.OrderID,
		OfferID:        s.OfferID,
		ShipmentNumber: s.ShipmentNumber,
		TrackingLink:   s.TrackingLink,
		DepartureDate:  formatDate(s.DepartureDate),
		ArrivalDate:    formatDate(s.ArrivalDate),
		Status:         s.Status.String(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromShipments(shipments []entities.Shipment) []Shipment {
	return mapSlice(shipments, FromShipment)
}

func (u ShipmentUpdate) ToModify() (entities.ShipmentModify, error) {
	departure, err := toNullableDate(u.DepartureDate)
	if err != nil {
		return entities.ShipmentModify{}, err
	}
	arrival, err := toNullableDate(u.ArrivalDate)
	if err != nil {
		return entities.ShipmentModify{}, err
	}

	modify := entities.ShipmentModify{
		ShipmentNumber: toNullableText(u.ShipmentNumber),
		TrackingLink:   toNullableText(u.TrackingLink),
		DepartureDate:  departure,
		ArrivalDate:    arrival,
	}
	if u.Status != nil {
		status := entities.ShipmentStatus(*u.Status)
		modify.Status = &status
	}
	return modify, nil
}
