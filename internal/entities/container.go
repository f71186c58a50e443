package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Container struct {
	ID          uuid.UUID
	Number      string
	Type        string
	TareWeight  decimal.NullDecimal
	GrossWeight decimal.NullDecimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ContainerModify struct {
	Number      *string
	Type        *string
	TareWeight  Nullable[decimal.Decimal]
	GrossWeight Nullable[decimal.Decimal]
}

type ContainerFilter struct {
	Search string
	Limit  uint64
	Offset uint64
}

// ContainerLink связь контейнера с отправкой и позиции, добавленные при связывании.
type ContainerLink struct {
	ContainerID uuid.UUID
	ShipmentID  uuid.UUID
	CreatedAt   time.Time
	Items       []ContainerItem
}

type ContainerItem struct {
	ID          uuid.UUID
	ContainerID uuid.UUID
	ShipmentID  uuid.UUID
	Description string
	Quantity    int
	Unit        string
	CNCode      *string
	EUCode      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContainerItemModify ShipmentID учитывается только при создании.
type ContainerItemModify struct {
	ShipmentID  *uuid.UUID
	Description *string
	Quantity    *int
	Unit        *string
	CNCode      Nullable[string]
	EUCode      Nullable[string]
}
