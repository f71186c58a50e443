package order

import (
	"freight/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		Code:         o.Code,
		SenderID:     o.SenderID,
		ReceiverID:   o.ReceiverID,
		FromPort:     o.FromPort,
		ToPort:       o.ToPort,
		DeliveryType: entities.DeliveryType(o.DeliveryType),
		Incoterm:     entities.Incoterm(o.Incoterm),
		LoadDate:     o.LoadDate,
		Status:       entities.OrderStatus(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func CargoToDomain(c *OrderCargoDB) entities.OrderCargo {
	return entities.OrderCargo{
		ID:        c.ID,
		OrderID:   c.OrderID,
		Unit:      entities.CargoUnit(c.Unit),
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
	}
}
