package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight/internal/entities"
)

type Container struct {
	ID          uuid.UUID           `json:"id"`
	Number      string              `json:"container_number"`
	Type        string              `json:"container_type"`
	TareWeight  decimal.NullDecimal `json:"tare_weight"`
	GrossWeight decimal.NullDecimal `json:"gross_weight"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type ContainerCreate struct {
	Number      string           `json:"container_number"`
	Type        string           `json:"container_type"`
	TareWeight  *decimal.Decimal `json:"tare_weight"`
	GrossWeight *decimal.Decimal `json:"gross_weight"`
}

type ContainerUpdate struct {
	Number      *string                   `json:"container_number"`
	Type        *string                   `json:"container_type"`
	TareWeight  Optional[decimal.Decimal] `json:"tare_weight"`
	GrossWeight Optional[decimal.Decimal] `json:"gross_weight"`
}

type ContainerLinkCreate struct {
	ShipmentID uuid.UUID    `json:"shipment_id"`
	Items      []ItemCreate `json:"items"`
}

type ContainerLink struct {
	ContainerID uuid.UUID `json:"container_id"`
	ShipmentID  uuid.UUID `json:"shipment_id"`
	CreatedAt   time.Time `json:"created_at"`
	Items       []Item    `json:"items"`
}

type Item struct {
	ID          uuid.UUID `json:"id"`
	ContainerID uuid.UUID `json:"container_id"`
	ShipmentID  uuid.UUID `json:"shipment_id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	CNCode      *string   `json:"cn_code"`
	EUCode      *string   `json:"eu_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ItemCreate struct {
	ShipmentID  uuid.UUID `json:"shipment_id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	CNCode      *string   `json:"cn_code"`
	EUCode      *string   `json:"eu_code"`
}

type ItemUpdate struct {
	ShipmentID  *uuid.UUID       `json:"shipment_id"`
	Description *string          `json:"description"`
	Quantity    *int             `json:"quantity"`
	Unit        *string          `json:"unit"`
	CNCode      Optional[string] `json:"cn_code"`
	EUCode      Optional[string] `json:"eu_code"`
}

func FromContainer(c entities.Container) Container {
	return Container{
		ID:          c.ID,
		Number:      c.Number,
		Type:        c.Type,
		TareWeight:  c.TareWeight,
		GrossWeight: c.GrossWeight,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromContainers(containers []entities.Container) []Container {
	return mapSlice(containers, FromContainer)
}

func FromItem(i entities.ContainerItem) Item {
	return Item{
		ID:          i.ID,
		ContainerID: i.ContainerID,
		ShipmentID:  i.ShipmentID,
		Description: i.Description,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		CNCode:      i.CNCode,
		EUCode:      i.EUCode,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func FromItems(items []entities.ContainerItem) []Item {
	return mapSlice(items, FromItem)
}

func FromContainerLink(l entities.ContainerLink) ContainerLink {
	return ContainerLink{
		ContainerID: l.ContainerID,
		ShipmentID:  l.ShipmentID,
		CreatedAt:   l.CreatedAt,
		Items:       FromItems(l.Items),
	}
}

func (c ContainerCreate) ToEntity() entities.Container {
	return entities.Container{
		Number:      c.Number,
		Type:        c.Type,
		TareWeight:  nullDecimal(c.TareWeight),
		GrossWeight: nullDecimal(c.GrossWeight),
	}
}

func (u ContainerUpdate) ToModify() entities.ContainerModify {
	return entities.ContainerModify{
		Number:      u.Number,
		Type:        u.Type,
		TareWeight:  toNullable(u.TareWeight),
		GrossWeight: toNullable(u.GrossWeight),
	}
}

func (c ItemCreate) ToEntity() entities.ContainerItem {
	return entities.ContainerItem{
		ShipmentID:  c.ShipmentID,
		Description: c.Description,
		Quantity:    c.Quantity,
		Unit:        c.Unit,
		CNCode:      c.CNCode,
		EUCode:      c.EUCode,
	}
}

func (l ContainerLinkCreate) ToItems() []entities.ContainerItem {
	return mapSlice(l.Items, ItemCreate.ToEntity)
}

func (u ItemUpdate) ToModify() entities.ContainerItemModify {
	return entities.ContainerItemModify{
		ShipmentID:  u.ShipmentID,
		Description: u.Description,
		Quantity:    u.Quantity,
		Unit:        u.Unit,
		CNCode:      toNullable(u.CNCode),
		EUCode:      toNullable(u.EUCode),
	}
}
