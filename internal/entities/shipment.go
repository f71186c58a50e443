package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentStatus string

const (
	ShipmentInPlanning                    ShipmentStatus = "InPlanning"
	ShipmentSpaceBooked                   ShipmentStatus = "SpaceBooked"
	ShipmentSpaceCanceled                 ShipmentStatus = "SpaceCanceled"
	ShipmentLoaded                        ShipmentStatus = "Loaded"
	ShipmentArrivedAtDeparturePort        ShipmentStatus = "ArrivedAtDeparturePort"
	ShipmentInTransit                     ShipmentStatus = "InTransit"
	ShipmentArrivedAtDestinationPort      ShipmentStatus = "ArrivedAtDestinationPort"
	ShipmentPreparingForOnCarriage        ShipmentStatus = "PreparingForOnCarriage"
	ShipmentInCustomsClearanceAndDelivery ShipmentStatus = "InCustomsClearanceAndDelivery"
	ShipmentCompleted                     ShipmentStatus = "Completed"
	ShipmentContainerBeingReturned        ShipmentStatus = "ContainerBeingReturned"
	ShipmentReturnCompleted               ShipmentStatus = "ReturnCompleted"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentInPlanning,
		ShipmentSpaceBooked,
		ShipmentSpaceCanceled,
		ShipmentLoaded,
		ShipmentArrivedAtDeparturePort,
		ShipmentInTransit,
		ShipmentArrivedAtDestinationPort,
		ShipmentPreparingForOnCarriage,
		ShipmentInCustomsClearanceAndDelivery,
		ShipmentCompleted,
		ShipmentContainerBeingReturned,
		ShipmentReturnCompleted:
		return true
	default:
		return false
	}
}

// NotificationKind вид уведомления участникам заказа.
type NotificationKind string

const (
	NotifyShipmentLoaded                   NotificationKind = "shipment.loaded"
	NotifyShipmentArrivedAtDeparturePort   NotificationKind = "shipment.arrived_at_departure_port"
	NotifyShipmentInTransit                NotificationKind = "shipment.in_transit"
	NotifyShipmentArrivedAtDestinationPort NotificationKind = "shipment.arrived_at_destination_port"
	NotifyShipmentCompleted                NotificationKind = "shipment.completed"
)

func (k NotificationKind) String() string {
	return string(k)
}

// Notification возвращает вид уведомления для статуса, если статус уведомляемый.
func (s ShipmentStatus) Notification() (NotificationKind, bool) {
	switch s {
	case ShipmentLoaded:
		return NotifyShipmentLoaded, true
	case ShipmentArrivedAtDeparturePort:
		return NotifyShipmentArrivedAtDeparturePort, true
	case ShipmentInTransit:
		return NotifyShipmentInTransit, true
	case ShipmentArrivedAtDestinationPort:
		return NotifyShipmentArrivedAtDestinationPort, true
	case ShipmentCompleted:
		return NotifyShipmentCompleted, true
	default:
		return "", false
	}
}

type Shipment struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	OfferID        uuid.UUID
	ShipmentNumber *string
	TrackingLink   *string
	DepartureDate  *time.Time
	ArrivalDate    *time.Time
	Status         ShipmentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ShipmentModify struct {
	ShipmentNumber Nullable[string]
	TrackingLink   Nullable[string]
	DepartureDate  Nullable[time.Time]
	ArrivalDate    Nullable[time.Time]
	Status         *ShipmentStatus
}

func (m ShipmentModify) IsEmpty() bool {
	return !m.ShipmentNumber.IsSet() &&
		!m.TrackingLink.IsSet() &&
		!m.DepartureDate.IsSet() &&
		!m.ArrivalDate.IsSet() &&
		m.Status == nil
}

type ShipmentFilter struct {
	OrderID     *uuid.UUID
	ContainerID *uuid.UUID
	Status      *ShipmentStatus
	Limit       uint64
	Offset      uint64
}

// ShipmentEvent событие об изменении отправки для доставки уведомлений.
type ShipmentEvent struct {
	ShipmentID uuid.UUID
	Kind       NotificationKind
	Status     ShipmentStatus
	OccurredAt time.Time
}

// ShipmentNotice данные для письма участникам заказа.
type ShipmentNotice struct {
	Shipment   Shipment
	OrderCode  string
	FromPort   string
	ToPort     string
	Recipients []User
}
