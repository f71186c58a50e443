package order

import (
	"strings"

	"github.com/google/uuid"

	"freight/internal/entities"
)

func isValidPort(port string) bool {
	return strings.TrimSpace(port) != ""
}

func validateCreate(o entities.Order, cargo []entities.CargoLine) error {
	if o.SenderID == uuid.Nil ||
		o.ReceiverID == uuid.Nil ||
		o.FromPort == "" ||
		o.ToPort == "" ||
		o.DeliveryType == "" ||
		o.Incoterm == "" {
		return ErrMissingRequiredFields
	}

	if o.SenderID == o.ReceiverID {
		return ErrSameParticipants
	}
	if !isValidPort(o.FromPort) || !isValidPort(o.ToPort) {
		return ErrInvalidPort
	}
	if !o.DeliveryType.IsValid() {
		return ErrInvalidDeliveryType
	}
	if !o.Incoterm.IsValid() {
		return ErrInvalidIncoterm
	}

	return validateCargo(cargo)
}

func validateModify(modify entities.OrderModify) error {
	if modify.SenderID == nil &&
		modify.ReceiverID == nil &&
		modify.FromPort == nil &&
		modify.ToPort == nil &&
		modify.DeliveryType == nil &&
		modify.Incoterm == nil &&
		!modify.LoadDate.IsSet() &&
		modify.Cargo == nil {
		return ErrNoFieldsToUpdate
	}

	if (modify.SenderID != nil && *modify.SenderID == uuid.Nil) ||
		(modify.ReceiverID != nil && *modify.ReceiverID == uuid.Nil) {
		return ErrMissingRequiredFields
	}
	if (modify.FromPort != nil && !isValidPort(*modify.FromPort)) ||
		(modify.ToPort != nil && !isValidPort(*modify.ToPort)) {
		return ErrInvalidPort
	}
	if modify.DeliveryType != nil && !modify.DeliveryType.IsValid() {
		return ErrInvalidDeliveryType
	}
	if modify.Incoterm != nil && !modify.Incoterm.IsValid() {
		return ErrInvalidIncoterm
	}
	if modify.Cargo != nil {
		return validateCargo(*modify.Cargo)
	}

	return nil
}

// validateCargo одна некорректная строка отклоняет весь набор.
func validateCargo(lines []entities.CargoLine) error {
	for _, line := range lines {
		if !line.Unit.IsValid() {
			return ErrInvalidCargoUnit
		}
		if line.Quantity <= 0 {
			return ErrInvalidCargoQuantity
		}
	}
	return nil
}

// hasOrderFields есть ли в обновлении поля самого заказа, а не только груз.
func hasOrderFields(modify entities.OrderModify) bool {
	return modify.SenderID != nil ||
		modify.ReceiverID != nil ||
		modify.FromPort != nil ||
		modify.ToPort != nil ||
		modify.DeliveryType != nil ||
		modify.Incoterm != nil ||
		modify.LoadDate.IsSet()
}
