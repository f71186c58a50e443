package shipment

import (
	"freight/internal/entities"
)

func validateModify(modify entities.ShipmentModify) error {
	if modify.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if modify.Status != nil && !modify.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}
