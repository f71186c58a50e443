package dto

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/entities"
)

type Order struct {
	ID           uuid.UUID    `json:"id"`
	Code         string       `json:"code"`
	SenderID     uuid.UUID    `json:"sender_id"`
	ReceiverID   uuid.UUID    `json:"receiver_id"`
	FromPort     string       `json:"from_port"`
	ToPort       string       `json:"to_port"`
	DeliveryType string       `json:"delivery_type"`
	Incoterm     string       `json:"incoterm"`
	LoadDate     *string      `json:"load_date"`
	Status       string       `json:"status"`
	Cargo        []OrderCargo `json:"cargo"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type OrderCargo struct {
	ID       uuid.UUID `json:"id"`
	Unit     string    `json:"cargo_unit"`
	Quantity int       `json:"quantity"`
}

type CargoLine struct {
	Unit     string `json:"cargo_unit"`
	Quantity int    `json:"quantity"`
}

type OrderCreate struct {
	SenderID     uuid.UUID   `json:"sender_id"`
	ReceiverID   uuid.UUID   `json:"receiver_id"`
	FromPort     string      `json:"from_port"`
	ToPort       string      `json:"to_port"`
	DeliveryType string      `json:"delivery_type"`
	Incoterm     string      `json:"incoterm"`
	LoadDate     *string     `json:"load_date"`
	Cargo        []CargoLine `json:"cargo"`
}

// OrderUpdate Cargo: ключ отсутствует - груз не меняется, [] - груз очищается.
type OrderUpdate struct {
	SenderID     *uuid.UUID       `json:"sender_id"`
	ReceiverID   *uuid.UUID       `json:"receiver_id"`
	FromPort     *string          `json:"from_port"`
	ToPort       *string          `json:"to_port"`
	DeliveryType *string          `json:"delivery_type"`
	Incoterm     *string          `json:"incoterm"`
	LoadDate     Optional[string] `json:"load_date"`
	Cargo        *[]CargoLine     `json:"cargo"`
}

func FromOrder(o entities.Order) Order {
	return Order{
		ID:           o.ID,
		Code:         o.Code,
		SenderID:     o.SenderID,
		ReceiverID:   o.ReceiverID,
		FromPort:     o.FromPort,
		ToPort:       o.ToPort,
		DeliveryType: o.DeliveryType.String(),
		Incoterm:     o.Incoterm.String(),
		LoadDate:     formatDate(o.LoadDate),
		Status:       o.Status.String(),
		Cargo: mapSlice(o.Cargo, func(c entities.OrderCargo) OrderCargo {
			return OrderCargo{ID: c.ID, Unit: c.Unit.String(), Quantity: c.Quantity}
		}),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []Order {
	return mapSlice(orders, FromOrder)
}

func toCargoLines(lines []CargoLine) []entities.CargoLine {
	return mapSlice(lines, func(l CargoLine) entities.CargoLine {
		return entities.CargoLine{Unit: entities.CargoUnit(l.Unit), Quantity: l.Quantity}
	})
}

func (c OrderCreate) ToEntity() (entities.Order, []entities.CargoLine, error) {
	loadDate, err := parseDatePtr(c.LoadDate)
	if err != nil {
		return entities.Order{}, nil, err
	}

	order := entities.Order{
		SenderID:     c.SenderID,
		ReceiverID:   c.ReceiverID,
		FromPort:     c.FromPort,
		ToPort:       c.ToPort,
		DeliveryType: entities.DeliveryType(c.DeliveryType),
		Incoterm:     entities.Incoterm(c.Incoterm),
		LoadDate:     loadDate,
	}
	return order, toCargoLines(c.Cargo), nil
}

func (u OrderUpdate) ToModify() (entities.OrderModify, error) {
	loadDate, err := toNullableDate(u.LoadDate)
	if err != nil {
		return entities.OrderModify{}, err
	}

	modify := entities.OrderModify{
		SenderID:   u.SenderID,
		ReceiverID: u.ReceiverID,
		FromPort:   u.FromPort,
		ToPort:     u.ToPort,
		LoadDate:   loadDate,
	}
	if u.DeliveryType != nil {
		deliveryType := entities.DeliveryType(*u.DeliveryType)
		modify.DeliveryType = &deliveryType
	}
	if u.Incoterm != nil {
		incoterm := entities.Incoterm(*u.Incoterm)
		modify.Incoterm = &incoterm
	}
	if u.Cargo != nil {
		cargo := toCargoLines(*u.Cargo)
		modify.Cargo = &cargo
	}
	return modify, nil
}
