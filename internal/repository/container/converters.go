package container

import (
	"github.com/shopspring/decimal"

	"freight/internal/entities"
)

func ToDomain(c *ContainerDB) *entities.Container {
	if c == nil {
		return nil
	}

	return &entities.Container{
		ID:          c.ID,
		Number:      c.Number,
		Type:        c.Type,
		TareWeight:  c.TareWeight,
		GrossWeight: c.GrossWeight,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ItemToDomain(i *ContainerItemDB) entities.ContainerItem {
	return entities.ContainerItem{
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

func nullDecimal(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}
