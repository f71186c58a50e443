//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Verifier interface {
	Verify(ctx context.Context, authorization string) (*entities.Identity, error)
}

type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, identity entities.Identity) (*entities.User, error)
}
