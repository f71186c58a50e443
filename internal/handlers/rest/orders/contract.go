//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_test
package orders

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateOrder(ctx context.Context, caller entities.User, order entities.Order, cargo []entities.CargoLine) (*entities.Order, error)
	GetOrder(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Order, error)
	ListOrders(ctx context.Context, caller entities.User, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, caller entities.User, id uuid.UUID, modify entities.OrderModify) (*entities.Order, error)
	DeleteOrder(ctx context.Context, caller entities.User, id uuid.UUID) error
}
