package app

import (
	"context"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight/internal/entities"
	"freight/internal/gateway/http/mailer"
	"freight/internal/gateway/identity"
	"freight/internal/gateway/kafka/shipment_events"
	"freight/internal/handlers/kafka-consumer/shipment_event"
	"freight/internal/handlers/tasks/identity_cache_purge"
	"freight/internal/pkg/config"
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
	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/ttlcache"
	"freight/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideIdentityCache(cfg *config.Config) *ttlcache.Cache[uuid.UUID, entities.User] {
	return ttlcache.New[uuid.UUID, entities.User](cfg.Auth.IdentityCacheTTL, time.Now)
}

func provideIdentityCachePurgeInterval(cfg *config.Config) IdentityCachePurgeInterval {
	return IdentityCachePurgeInterval(cfg.Tasks.IdentityCachePurgeInterval)
}

func provideUnlinkCascadeItems(cfg *config.Config) UnlinkCascadeItems {
	return UnlinkCascadeItems(cfg.Containers.UnlinkCascadeItems)
}

func provideVerifier(cfg *config.Config) *identity.Verifier {
	return identity.New(cfg.Auth.JWTSecret, cfg.Auth.JWTAudience)
}

func provideShipmentEvents(log logger.Logger, producer sarama.AsyncProducer, cfg *config.Config) *shipment_events.Publisher {
	return shipment_events.New(log, producer, cfg.Kafka.Topic)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideContainerRepository(querier *querier.Querier) *containerRepo.Repository {
	return containerRepo.New(querier)
}

func provideServiceUser(
	repository userService.Repository,
	cache userService.IdentityCache,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, cache, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	notifier shipmentService.Notifier,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, notifier, txManager)
}

func provideServiceOffer(
	repository offerService.Repository,
	orderService offerService.OrderService,
	shipmentService offerService.ShipmentService,
	txManager offerService.TxManager,
) *offerService.Offer {
	return offerService.New(repository, orderService, shipmentService, txManager)
}

func provideServiceContainer(
	repository containerService.Repository,
	shipmentService containerService.ShipmentService,
	txManager containerService.TxManager,
	unlinkCascadeItems UnlinkCascadeItems,
) *containerService.Container {
	return containerService.New(repository, shipmentService, txManager, bool(unlinkCascadeItems))
}

// provideNoticeService воркер только читает отправки и ничего не публикует.
func provideNoticeService(
	repository shipmentService.Repository,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, nil, txManager)
}

func provideMailerClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Mailer.Timeout}
}

func provideMailerGateway(client *http.Client, cfg *config.Config) *mailer.Gateway {
	return mailer.New(client, cfg.Mailer.URL, cfg.Mailer.APIKey, cfg.Mailer.Sender)
}

func provideServiceNotification(
	shipmentService notificationService.ShipmentService,
	mailer notificationService.Mailer,
) *notificationService.Notification {
	return notificationService.New(shipmentService, mailer)
}

func provideShipmentEventHandler(
	log logger.Logger,
	service shipment_event.Service,
	cfg *config.Config,
) *shipment_event.Handler {
	return shipment_event.New(log, service, cfg.Kafka.Handlers.ShipmentEvent.ProcessTimeout)
}

func provideIdentityCachePurgeTask(
	log logger.Logger,
	service identity_cache_purge.Service,
	interval IdentityCachePurgeInterval,
) *identity_cache_purge.IdentityCachePurge {
	return identity_cache_purge.New(log, service, time.Duration(interval))
}

func provideTaskList(
	identityCachePurgeTask *identity_cache_purge.IdentityCachePurge,
) []background.Task {
	return []background.Task{
		identityCachePurgeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
