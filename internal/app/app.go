// Package app собирает граф зависимостей сервиса и воркера уведомлений через google/wire.
package app

import (
	"time"

	"freight/internal/gateway/kafka/shipment_events"
	"freight/internal/handlers/kafka-consumer/shipment_event"
	"freight/internal/handlers/rest/containers"
	"freight/internal/handlers/rest/offers"
	"freight/internal/handlers/rest/orders"
	"freight/internal/handlers/rest/shipments"
	"freight/internal/handlers/rest/users"
	"freight/internal/pkg/middlewares/auth"
	"freight/pkg/background"
)

type (
	IdentityCachePurgeInterval time.Duration
	UnlinkCascadeItems         bool
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceOrder      ServiceOrder
	ServiceOffer      ServiceOffer
	ServiceShipment   ServiceShipment
	ServiceContainer  ServiceContainer
	Verifier          auth.Verifier
	ShipmentEvents    *shipment_events.Publisher
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	users.Service
	auth.IdentityResolver
}

type ServiceOrder interface {
	orders.Service
}

type ServiceOffer interface {
	offers.Service
}

type ServiceShipment interface {
	shipments.Service
}

type ServiceContainer interface {
	containers.Service
}

type NotificationWorkerApp struct {
	ShipmentEventHandler *shipment_event.Handler
}
