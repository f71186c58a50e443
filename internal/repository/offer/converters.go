package offer

import (
	"strings"

	"github.com/shopspring/decimal"

	"freight/internal/entities"
)

func ToDomain(o *OfferDB) *entities.Offer {
	if o == nil {
		return nil
	}

	return &entities.Offer{
		ID:            o.ID,
		OrderID:       o.OrderID,
		Carrier:       o.Carrier,
		FreightCost:   o.FreightCost,
		PortSurcharge: o.PortSurcharge,
		TruckingCost:  o.TruckingCost,
		CustomsCost:   o.CustomsCost,
		Currency:      strings.TrimSpace(o.Currency),
		Status:        entities.OfferStatus(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// nullDecimal значение для записи в nullable numeric колонку.
func nullDecimal(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}
