package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "Pending"
	OfferAccepted OfferStatus = "Accepted"
	OfferRejected OfferStatus = "Rejected"
)

func (s OfferStatus) String() string {
	return string(s)
}

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferPending, OfferAccepted, OfferRejected:
		return true
	default:
		return false
	}
}

type OfferAction string

const (
	OfferAccept OfferAction = "accept"
	OfferReject OfferAction = "reject"
)

func (a OfferAction) String() string {
	return string(a)
}

const DefaultCurrency = "USD"

type Offer struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	Carrier       string
	FreightCost   decimal.NullDecimal
	PortSurcharge decimal.NullDecimal
	TruckingCost  decimal.NullDecimal
	CustomsCost   decimal.NullDecimal
	Currency      string
	Status        OfferStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Total сумма заданных стоимостей.
func (o Offer) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range []decimal.NullDecimal{o.FreightCost, o.PortSurcharge, o.TruckingCost, o.CustomsCost} {
		if c.Valid {
			total = total.Add(c.Decimal)
		}
	}
	return total
}

type OfferModify struct {
	OrderID       *uuid.UUID
	Carrier       *string
	FreightCost   Nullable[decimal.Decimal]
	PortSurcharge Nullable[decimal.Decimal]
	TruckingCost  Nullable[decimal.Decimal]
	CustomsCost   Nullable[decimal.Decimal]
	Currency      *string
}

type OfferFilter struct {
	OrderID *uuid.UUID
	Status  *OfferStatus
	Limit   uint64
	Offset  uint64
}

// OfferTransition результат accept/reject. Shipment заполнен только при accept.
type OfferTransition struct {
	Offer    Offer
	Order    Order
	Shipment *Shipment
}
