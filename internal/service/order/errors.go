package order

import "freight/pkg/apperr"

var (
	ErrMissingRequiredFields = apperr.New(apperr.KindValidation, "sender_id, receiver_id, from_port, to_port, delivery_type and incoterm are required")
	ErrNoFieldsToUpdate      = apperr.New(apperr.KindValidation, "no fields to update")
	ErrSameParticipants      = apperr.New(apperr.KindValidation, "sender and receiver must be different users")
	ErrInvalidPort           = apperr.New(apperr.KindValidation, "port must not be empty")
	ErrInvalidDeliveryType   = apperr.New(apperr.KindValidation, "delivery_type must be one of Air, Sea, Land")
	ErrInvalidIncoterm       = apperr.New(apperr.KindValidation, "incoterm must be one of EXW, FOB, CIF, CFR, DAP")
	ErrInvalidCargoUnit      = apperr.New(apperr.KindValidation, "cargo unit must be one of Container, Pallet, Box, Piece, Roll, Package")
	ErrInvalidCargoQuantity  = apperr.New(apperr.KindValidation, "cargo quantity must be a positive integer")
	ErrInvalidStatus         = apperr.New(apperr.KindValidation, "order status is not valid")

	ErrNotParticipant = apperr.New(apperr.KindScope, "caller must be the sender or the receiver of the order")

	ErrOrderNotFound = apperr.New(apperr.KindNotFound, "order not found")

	ErrParticipantReference = apperr.New(apperr.KindReference, "sender or receiver does not exist")
)
