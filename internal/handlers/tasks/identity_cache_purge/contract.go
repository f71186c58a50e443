//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_cache_purge_test
package identity_cache_purge

import (
	"context"

	"freight/pkg/logger"
)

type Service interface {
	PurgeIdentityCache(ctx context.Context) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
