package offer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferDB struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	Carrier       string
	FreightCost   decimal.NullDecimal
	PortSurcharge decimal.NullDecimal
	TruckingCost  decimal.NullDecimal
	CustomsCost   decimal.NullDecimal
	Currency      string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var offerColumnList = []string{
	"id", "order_id", "carrier", "freight_cost", "port_surcharge", "trucking_cost",
	"customs_cost", "currency", "status", "created_at", "updated_at",
}

var offerColumns = strings.Join(offerColumnList, ", ")

// offerColumnsOf колонки с алиасом таблицы для запросов с join.
func offerColumnsOf(alias string) []string {
	cols := make([]string, len(offerColumnList))
	for i, c := range offerColumnList {
		cols[i] = alias + "." + c
	}
	return cols
}

func (o *OfferDB) scanTargets() []interface{} {
	return []interface{}{
		&o.ID,
		&o.OrderID,
		&o.Carrier,
		&o.FreightCost,
		&o.PortSurcharge,
		&o.TruckingCost,
		&o.CustomsCost,
		&o.Currency,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
