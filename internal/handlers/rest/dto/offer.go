package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight/internal/entities"
)

type Offer struct {
	ID            uuid.UUID           `json:"id"`
	OrderID       uuid.UUID           `json:"order_id"`
	Carrier       string              `json:"carrier"`
	FreightCost   decimal.NullDecimal `json:"freight_cost"`
	PortSurcharge decimal.NullDecimal `json:"port_surcharge"`
	TruckingCost  decimal.NullDecimal `json:"trucking_cost"`
	CustomsCost   decimal.NullDecimal `json:"customs_cost"`
	Total         decimal.Decimal     `json:"total"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type OfferCreate struct {
	OrderID       uuid.UUID        `json:"order_id"`
	Carrier       string           `json:"carrier"`
	FreightCost   *decimal.Decimal `json:"freight_cost"`
	PortSurcharge *decimal.Decimal `json:"port_surcharge"`
	TruckingCost  *decimal.Decimal `json:"trucking_cost"`
	CustomsCost   *decimal.Decimal `json:"customs_cost"`
	Currency      string           `json:"currency"`
}

type OfferUpdate struct {
	OrderID       *uuid.UUID                `json:"order_id"`
	Carrier       *string                   `json:"carrier"`
	FreightCost   Optional[decimal.Decimal] `json:"freight_cost"`
	PortSurcharge Optional[decimal.Decimal] `json:"port_surcharge"`
	TruckingCost  Optional[decimal.Decimal] `json:"trucking_cost"`
	CustomsCost   Optional[decimal.Decimal] `json:"customs_cost"`
	Currency      *string                   `json:"currency"`
}

type OfferStatusUpdate struct {
	Action string `json:"action"`
}

// OfferTransition Shipment присутствует только после принятия.
type OfferTransition struct {
	Offer    Offer     `json:"offer"`
	Order    Order     `json:"order"`
	Shipment *Shipment `json:"shipment,omitempty"`
}

func FromOffer(o entities.Offer) Offer {
	return Offer{
		ID:            o.ID,
		OrderID:       o.OrderID,
		Carrier:       o.Carrier,
		FreightCost:   o.FreightCost,
		PortSurcharge: o.PortSurcharge,
		TruckingCost:  o.TruckingCost,
		CustomsCost:   o.CustomsCost,
		Total:         o.Total(),
		Currency:      o.Currency,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOffers(offers []entities.Offer) []Offer {
	return mapSlice(offers, FromOffer)
}

func FromOfferTransition(t entities.OfferTransition) OfferTransition {
	transition := OfferTransition{
		Offer: FromOffer(t.Offer),
		Order: FromOrder(t.Order),
	}
	if t.Shipment != nil {
		shipment := FromShipment(*t.Shipment)
		transition.Shipment = &shipment
	}
	return transition
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func (c OfferCreate) ToEntity() entities.Offer {
	return entities.Offer{
		OrderID:       c.OrderID,
		Carrier:       c.Carrier,
		FreightCost:   nullDecimal(c.FreightCost),
		PortSurcharge: nullDecimal(c.PortSurcharge),
		TruckingCost:  nullDecimal(c.TruckingCost),
		CustomsCost:   nullDecimal(c.CustomsCost),
		Currency:      c.Currency,
	}
}

func (u OfferUpdate) ToModify() entities.OfferModify {
	return entities.OfferModify{
		OrderID:       u.OrderID,
		Carrier:       u.Carrier,
		FreightCost:   toNullable(u.FreightCost),
		PortSurcharge: toNullable(u.PortSurcharge),
		TruckingCost:  toNullable(u.TruckingCost),
		CustomsCost:   toNullable(u.CustomsCost),
		Currency:      u.Currency,
	}
}
