package container

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"freight/internal/entities"
)

var tariffCodeRe = regexp.MustCompile(`^[0-9]{8,10}$`)

// NormalizeNumber номер контейнера хранится в верхнем регистре без пробелов.
func NormalizeNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// IsValidTariffCode CN и EU коды: от 8 до 10 цифр.
func IsValidTariffCode(code string) bool {
	return tariffCodeRe.MatchString(code)
}

func isValidWeight(weight decimal.NullDecimal) bool {
	return !weight.Valid || !weight.Decimal.IsNegative()
}

func validateContainer(c entities.Container) error {
	if c.Number == "" || strings.TrimSpace(c.Type) == "" {
		return ErrMissingRequiredFields
	}
	if !isValidWeight(c.TareWeight) || !isValidWeight(c.GrossWeight) {
		return ErrInvalidWeight
	}
	return nil
}

func validateContainerModify(modify entities.ContainerModify) error {
	if modify.Number == nil &&
		modify.Type == nil &&
		!modify.TareWeight.IsSet() &&
		!modify.GrossWeight.IsSet() {
		return ErrNoFieldsToUpdate
	}

	if modify.Number != nil && *modify.Number == "" {
		return ErrInvalidNumber
	}
	if modify.Type != nil && strings.TrimSpace(*modify.Type) == "" {
		return ErrInvalidType
	}
	if w, ok := modify.TareWeight.Get(); ok && w.IsNegative() {
		return ErrInvalidWeight
	}
	if w, ok := modify.GrossWeight.Get(); ok && w.IsNegative() {
		return ErrInvalidWeight
	}
	return nil
}

func validateItem(item entities.ContainerItem) error {
	if strings.TrimSpace(item.Description) == "" {
		return ErrInvalidDescription
	}
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if strings.TrimSpace(item.Unit) == "" {
		return ErrInvalidUnit
	}
	if item.CNCode != nil && !IsValidTariffCode(*item.CNCode) {
		return ErrInvalidCNCode
	}
	if item.EUCode != nil && !IsValidTariffCode(*item.EUCode) {
		return ErrInvalidEUCode
	}
	return nil
}

func validateItemModify(modify entities.ContainerItemModify) error {
	if modify.Description == nil &&
		modify.Quantity == nil &&
		modify.Unit == nil &&
		!modify.CNCode.IsSet() &&
		!modify.EUCode.IsSet() {
		return ErrNoFieldsToUpdate
	}

	if modify.Description != nil && strings.TrimSpace(*modify.Description) == "" {
		return ErrInvalidDescription
	}
	if modify.Quantity != nil && *modify.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if modify.Unit != nil && strings.TrimSpace(*modify.Unit) == "" {
		return ErrInvalidUnit
	}
	if code, ok := modify.CNCode.Get(); ok && !IsValidTariffCode(code) {
		return ErrInvalidCNCode
	}
	if code, ok := modify.EUCode.Get(); ok && !IsValidTariffCode(code) {
		return ErrInvalidEUCode
	}
	return nil
}
