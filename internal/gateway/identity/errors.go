package identity

import "freight/pkg/apperr"

var (
	ErrMissingToken = apperr.New(apperr.KindUnauthenticated, "missing bearer credential")
	ErrInvalidToken = apperr.New(apperr.KindUnauthenticated, "invalid bearer credential")
)
