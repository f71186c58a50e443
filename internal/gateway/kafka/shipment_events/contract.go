//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_events_test
package shipment_events

import "freight/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
