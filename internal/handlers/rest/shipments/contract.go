//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_test
package shipments

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
	GetShipment(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Shipment, error)
	ListShipments(ctx context.Context, caller entities.User, filter entities.ShipmentFilter) ([]entities.Shipment, error)
	UpdateShipment(ctx context.Context, caller entities.User, id uuid.UUID, modify entities.ShipmentModify) (*entities.Shipment, error)
	DeleteShipment(ctx context.Context, caller entities.User, id uuid.UUID) error
}
