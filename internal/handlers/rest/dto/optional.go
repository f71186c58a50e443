// Package dto JSON представление ресурсов REST API и преобразование в сущности.
package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/entities"
)

const DateLayout = time.DateOnly

var ErrInvalidDate = errors.New("dates must use the YYYY-MM-DD format")

// Optional поле частичного обновления: отличает отсутствующий ключ от явного null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func toNullable[T any](o Optional[T]) entities.Nullable[T] {
	switch {
	case !o.Set:
		return entities.Nullable[T]{}
	case o.Null:
		return entities.Null[T]()
	default:
		return entities.Set(o.Value)
	}
}

// toNullableText пустая строка сбрасывает значение так же, как null.
func toNullableText(o Optional[string]) entities.Nullable[string] {
	if o.Set && !o.Null && strings.TrimSpace(o.Value) == "" {
		return entities.Null[string]()
	}
	return toNullable(o)
}

func toNullableDate(o Optional[string]) (entities.Nullable[time.Time], error) {
	text := toNullableText(o)
	value, ok := text.Get()
	if !ok {
		if text.IsNull() {
			return entities.Null[time.Time](), nil
		}
		return entities.Nullable[time.Time]{}, nil
	}

	date, err := parseDate(value)
	if err != nil {
		return entities.Nullable[time.Time]{}, err
	}
	return entities.Set(date), nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	date, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func formatDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	s := date.Format(DateLayout)
	return &s
}

// mapSlice пустой результат сериализуется как [], а не null.
func mapSlice[S, D any](src []S, fn func(S) D) []D {
	dst := make([]D, 0, len(src))
	for _, v := range src {
		dst = append(dst, fn(v))
	}
	return dst
}
