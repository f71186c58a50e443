package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderOffered   OrderStatus = "Offered"
	OrderAccepted  OrderStatus = "Accepted"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderOffered, OrderAccepted, OrderShipped, OrderDelivered:
		return true
	default:
		return false
	}
}

// AcceptsOffers новые предложения допустимы только до принятия одного из них.
func (s OrderStatus) AcceptsOffers() bool {
	return s == OrderPending || s == OrderOffered
}

type DeliveryType string

const (
	DeliveryAir  DeliveryType = "Air"
	DeliverySea  DeliveryType = "Sea"
	DeliveryLand DeliveryType = "Land"
)

func (t DeliveryType) String() string {
	return string(t)
}

func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryAir, DeliverySea, DeliveryLand:
		return true
	default:
		return false
	}
}

type Incoterm string

const (
	IncotermEXW Incoterm = "EXW"
	IncotermFOB Incoterm = "FOB"
	IncotermCIF Incoterm = "CIF"
	IncotermCFR Incoterm = "CFR"
	IncotermDAP Incoterm = "DAP"
)

func (i Incoterm) String() string {
	return string(i)
}

func (i Incoterm) IsValid() bool {
	switch i {
	case IncotermEXW, IncotermFOB, IncotermCIF, IncotermCFR, IncotermDAP:
		return true
	default:
		return false
	}
}

type CargoUnit string

const (
	CargoContainer CargoUnit = "Container"
	CargoPallet    CargoUnit = "Pallet"
	CargoBox       CargoUnit = "Box"
	CargoPiece     CargoUnit = "Piece"
	CargoRoll      CargoUnit = "Roll"
	CargoPackage   CargoUnit = "Package"
)

func (u CargoUnit) String() string {
	return string(u)
}

func (u CargoUnit) IsValid() bool {
	switch u {
	case CargoContainer, CargoPallet, CargoBox, CargoPiece, CargoRoll, CargoPackage:
		return true
	default:
		return false
	}
}

type Order struct {
	ID           uuid.UUID
	Code         string
	SenderID     uuid.UUID
	ReceiverID   uuid.UUID
	FromPort     string
	ToPort       string
	DeliveryType DeliveryType
	Incoterm     Incoterm
	LoadDate     *time.Time
	Status       OrderStatus
	Cargo        []OrderCargo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderCargo struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Unit      CargoUnit
	Quantity  int
	CreatedAt time.Time
}

type CargoLine struct {
	Unit     CargoUnit
	Quantity int
}

// OrderModify статус сюда не входит, его меняет только обработка предложений.
// Cargo: nil - строки не трогаются, пустой слайс - строки удаляются.
type OrderModify struct {
	SenderID     *uuid.UUID
	ReceiverID   *uuid.UUID
	FromPort     *string
	ToPort       *string
	DeliveryType *DeliveryType
	Incoterm     *Incoterm
	LoadDate     Nullable[time.Time]
	Cargo        *[]CargoLine
}

type OrderFilter struct {
	Status        *OrderStatus
	SenderID      *uuid.UUID
	ReceiverID    *uuid.UUID
	CounterpartID *uuid.UUID
	Search        string
	Limit         uint64
	Offset        uint64
}
