package offer

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight/internal/entities"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

func isValidCarrier(carrier string) bool {
	return strings.TrimSpace(carrier) != ""
}

func isValidCurrency(currency string) bool {
	return currencyRe.MatchString(currency)
}

func isValidCost(cost decimal.NullDecimal) bool {
	return !cost.Valid || !cost.Decimal.IsNegative()
}

func isValidCostPatch(cost entities.Nullable[decimal.Decimal]) bool {
	v, ok := cost.Get()
	return !ok || !v.IsNegative()
}

func validateCreate(o entities.Offer) error {
	if o.OrderID == uuid.Nil || o.Carrier == "" {
		return ErrMissingRequiredFields
	}
	if !isValidCarrier(o.Carrier) {
		return ErrInvalidCarrier
	}

	for _, cost := range []decimal.NullDecimal{o.FreightCost, o.PortSurcharge, o.TruckingCost, o.CustomsCost} {
		if !isValidCost(cost) {
			return ErrInvalidCost
		}
	}

	if !isValidCurrency(o.Currency) {
		return ErrInvalidCurrency
	}

	return nil
}

func validateModify(modify entities.OfferModify) error {
	if modify.Carrier == nil &&
		!modify.FreightCost.IsSet() &&
		!modify.PortSurcharge.IsSet() &&
		!modify.TruckingCost.IsSet() &&
		!modify.CustomsCost.IsSet() &&
		modify.Currency == nil {
		return ErrNoFieldsToUpdate
	}

	if modify.Carrier != nil && !isValidCarrier(*modify.Carrier) {
		return ErrInvalidCarrier
	}

	for _, cost := range []entities.Nullable[decimal.Decimal]{
		modify.FreightCost,
		modify.PortSurcharge,
		modify.TruckingCost,
		modify.CustomsCost,
	} {
		if !isValidCostPatch(cost) {
			return ErrInvalidCost
		}
	}

	if modify.Currency != nil && !isValidCurrency(*modify.Currency) {
		return ErrInvalidCurrency
	}

	return nil
}
