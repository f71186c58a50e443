//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight/internal/entities"
	"freight/internal/gateway/http/mailer"
	"freight/internal/gateway/identity"
	"freight/internal/gateway/kafka/shipment_events"
	"freight/internal/handlers/kafka-consumer/shipment_event"
	"freight/internal/handlers/tasks/identity_cache_purge"
	"freight/internal/pkg/config"
	"freight/internal/pkg/middlewares/auth"
	containerRepo "freight/internal/repository/container"
	offerRepo "freight/internal/repository/offer"
	orderRepo "freight/internal/repository/order"
	shipmentRepo "freight/internal/repository/shipment"
	userRepo "freight/internal/repository/user"
	containerService "freight/internal/service/container"
	notificationService "freight/internal/service/notification"
	offerService "freight/internal/service/offer"
	orderService "freight/internal/service/order"
	shipmentService "freight/internal/service/shipment"
	userService "freight/internal/service/user"
	"freight/pkg/logger"
	"freight/pkg/ttlcache"
	"freight/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.AsyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideIdentityCache,
		provideIdentityCachePurgeInterval,
		provideUnlinkCascadeItems,
		provideVerifier,
		provideShipmentEvents,

		provideUserRepository,
		provideOrderRepository,
		provideOfferRepository,
		provideShipmentRepository,
		provideContainerRepository,

		provideServiceUser,
		provideServiceOrder,
		provideServiceShipment,
		provideServiceOffer,
		provideServiceContainer,

		provideIdentityCachePurgeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceOffer), new(*offerService.Offer)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceContainer), new(*containerService.Container)),
		wire.Bind(new(auth.Verifier), new(*identity.Verifier)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(offerService.Repository), new(*offerRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(containerService.Repository), new(*containerRepo.Repository)),

		wire.Bind(new(userService.IdentityCache), new(*ttlcache.Cache[uuid.UUID, entities.User])),
		wire.Bind(new(shipmentService.Notifier), new(*shipment_events.Publisher)),
		wire.Bind(new(offerService.OrderService), new(*orderService.Order)),
		wire.Bind(new(offerService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(containerService.ShipmentService), new(*shipmentService.Shipment)),

		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(offerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(containerService.TxManager), new(*tx.Manager)),

		wire.Bind(new(identity_cache_purge.Service), new(*userService.User)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-shipment-notifications)
func InitializeNotificationWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*NotificationWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideNoticeService,

		provideMailerClient,
		provideMailerGateway,
		provideServiceNotification,
		provideShipmentEventHandler,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(notificationService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(notificationService.Mailer), new(*mailer.Gateway)),
		wire.Bind(new(shipment_event.Service), new(*notificationService.Notification)),

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}

