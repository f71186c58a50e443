// Package apperr классифицирует доменные ошибки по категориям,
// из которых транспортный слой выводит код ответа.
package apperr

import "errors"

type Kind uint8

const (
	KindUnexpected Kind = iota
	KindValidation
	KindUnauthenticated
	KindScope
	KindNotFound
	KindConflict
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindScope:
		return "scope"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindReference:
		return "reference"
	default:
		return "unexpected"
	}
}

// Error sentinel-ошибка с категорией. Сообщение безопасно отдавать клиенту.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf возвращает категорию первой классифицированной ошибки в цепочке.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindUnexpected
}

// PublicMessage сообщение для клиента без контекста оборачивания.
// Для неклассифицированных ошибок возвращает пустую строку.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	return ""
}
