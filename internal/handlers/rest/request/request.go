// Package request разбор входных данных REST запроса: вызывающий, параметры пути и query, тело.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"freight/internal/entities"
	"freight/internal/gateway/identity"
	"freight/internal/pkg/middlewares/auth"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

var (
	ErrInvalidBody  = errors.New("request body is not valid JSON")
	ErrInvalidQuery = errors.New("invalid query parameter")
	ErrInvalidPath  = errors.New("invalid path parameter")
)

// Caller профиль, положенный в контекст auth middleware. Без него запрос не аутентифицирован.
func Caller(r *http.Request) (entities.User, error) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		return entities.User{}, identity.ErrMissingToken
	}
	return caller, nil
}

func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", ErrInvalidPath, name)
	}
	return id, nil
}

func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBody, err.Error())
	}
	return nil
}

func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a UUID", ErrInvalidQuery, name)
	}
	return &id, nil
}

func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// Page limit и offset из query. Отсутствующий limit дает DefaultLimit, больший MaxLimit обрезается.
func Page(r *http.Request) (limit, offset uint64, err error) {
	limit = DefaultLimit
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return 0, 0, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidQuery)
		}
		limit = min(limit, MaxLimit)
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: offset must be a non-negative integer", ErrInvalidQuery)
		}
	}

	return limit, offset, nil
}
