package shipment

import "freight/pkg/apperr"

var (
	ErrNoFieldsToUpdate = apperr.New(apperr.KindValidation, "no fields to update")
	ErrInvalidStatus    = apperr.New(apperr.KindValidation, "shipment status is not valid")

	ErrAdminOnly = apperr.New(apperr.KindScope, "only an administrator can delete shipments")

	ErrShipmentNotFound = apperr.New(apperr.KindNotFound, "shipment not found")

	ErrShipmentExists = apperr.New(apperr.KindConflict, "offer already has a shipment")

	ErrOrderReference = apperr.New(apperr.KindReference, "order or offer does not exist")
)
