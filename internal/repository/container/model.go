package container

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContainerDB struct {
	ID          uuid.UUID
	Number      string
	Type        string
	TareWeight  decimal.NullDecimal
	GrossWeight decimal.NullDecimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const containerColumns = "id, container_number, container_type, tare_weight, gross_weight, created_at, updated_at"

func (c *ContainerDB) scanTargets() []interface{} {
	return []interface{}{
		&c.ID,
		&c.Number,
		&c.Type,
		&c.TareWeight,
		&c.GrossWeight,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

type ContainerItemDB struct {
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

var itemColumnList = []string{
	"id", "container_id", "shipment_id", "description", "quantity", "unit",
	"cn_code", "eu_code", "created_at", "updated_at",
}

var itemColumns = strings.Join(itemColumnList, ", ")

func itemColumnsOf(alias string) []string {
	cols := make([]string, len(itemColumnList))
	for i, c := range itemColumnList {
		cols[i] = alias + "." + c
	}
	return cols
}

func (i *ContainerItemDB) scanTargets() []interface{} {
	return []interface{}{
		&i.ID,
		&i.ContainerID,
		&i.ShipmentID,
		&i.Description,
		&i.Quantity,
		&i.Unit,
		&i.CNCode,
		&i.EUCode,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}
