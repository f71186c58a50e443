package offer

import "freight/pkg/apperr"

var (
	ErrMissingRequiredFields = apperr.New(apperr.KindValidation, "order_id and carrier are required")
	ErrNoFieldsToUpdate      = apperr.New(apperr.KindValidation, "no fields to update")
	ErrInvalidCarrier        = apperr.New(apperr.KindValidation, "carrier must not be empty")
	ErrInvalidCost           = apperr.New(apperr.KindValidation, "costs must not be negative")
	ErrInvalidCurrency       = apperr.New(apperr.KindValidation, "currency must be a three letter ISO 4217 code")
	ErrInvalidAction         = apperr.New(apperr.KindValidation, "action must be accept or reject")
	ErrInvalidStatus         = apperr.New(apperr.KindValidation, "offer status is not valid")

	ErrAdminOnly = apperr.New(apperr.KindScope, "only an administrator can manage offers")

	ErrOfferNotFound = apperr.New(apperr.KindNotFound, "offer not found")

	ErrOfferAlreadyProcessed = apperr.New(apperr.KindConflict, "offer has already been processed")
	ErrOrderClosed           = apperr.New(apperr.KindConflict, "order already has an accepted offer")
	ErrOfferHasShipment      = apperr.New(apperr.KindConflict, "offer has a shipment and cannot be deleted")

	ErrOrderReference = apperr.New(apperr.KindReference, "order does not exist")
)
