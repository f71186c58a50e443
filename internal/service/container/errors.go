package container

import "freight/pkg/apperr"

var (
	ErrMissingRequiredFields = apperr.New(apperr.KindValidation, "missing required fields")
	ErrNoFieldsToUpdate      = apperr.New(apperr.KindValidation, "no fields to update")
	ErrInvalidNumber         = apperr.New(apperr.KindValidation, "container_number must not be empty")
	ErrInvalidType           = apperr.New(apperr.KindValidation, "container_type must not be empty")
	ErrInvalidWeight         = apperr.New(apperr.KindValidation, "weights must not be negative")
	ErrInvalidDescription    = apperr.New(apperr.KindValidation, "description must not be empty")
	ErrInvalidQuantity       = apperr.New(apperr.KindValidation, "quantity must be a positive integer")
	ErrInvalidUnit           = apperr.New(apperr.KindValidation, "unit must not be empty")
	ErrInvalidCNCode         = apperr.New(apperr.KindValidation, "cn_code must be 8 to 10 digits")
	ErrInvalidEUCode         = apperr.New(apperr.KindValidation, "eu_code must be 8 to 10 digits")
	ErrItemShipmentMismatch  = apperr.New(apperr.KindValidation, "item shipment_id must match the linked shipment")

	ErrAdminOnly = apperr.New(apperr.KindScope, "only an administrator can delete containers")

	ErrContainerNotFound = apperr.New(apperr.KindNotFound, "container not found")
	ErrItemNotFound      = apperr.New(apperr.KindNotFound, "container item not found")
	ErrLinkNotFound      = apperr.New(apperr.KindNotFound, "container is not linked to the shipment")

	ErrNumberTaken    = apperr.New(apperr.KindConflict, "container_number is already registered")
	ErrAlreadyLinked  = apperr.New(apperr.KindConflict, "container is already linked to the shipment")
	ErrNotLinked      = apperr.New(apperr.KindConflict, "container must be linked to the shipment before adding items")
	ErrContainerInUse = apperr.New(apperr.KindConflict, "container is referenced and cannot be deleted")
)
