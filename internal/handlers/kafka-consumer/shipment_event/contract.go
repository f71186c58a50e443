//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_event_test
package shipment_event

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

type Service interface {
	DeliverShipmentEvent(ctx context.Context, event entities.ShipmentEvent) (int, error)
}
