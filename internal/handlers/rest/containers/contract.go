//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=containers_test
package containers

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
	CreateContainer(ctx context.Context, container entities.Container) (*entities.Container, error)
	GetContainer(ctx context.Context, id uuid.UUID) (*entities.Container, error)
	ListContainers(ctx context.Context, filter entities.ContainerFilter) ([]entities.Container, error)
	UpdateContainer(ctx context.Context, id uuid.UUID, modify entities.ContainerModify) (*entities.Container, error)
	DeleteContainer(ctx context.Context, caller entities.User, id uuid.UUID) error

	Link(ctx context.Context, caller entities.User, containerID, shipmentID uuid.UUID, items []entities.ContainerItem) (*entities.ContainerLink, error)
	Unlink(ctx context.Context, caller entities.User, containerID, shipmentID uuid.UUID) error
	ListShipments(ctx context.Context, caller entities.User, containerID uuid.UUID, filter entities.ShipmentFilter) ([]entities.Shipment, error)

	AddItem(ctx context.Context, caller entities.User, containerID uuid.UUID, item entities.ContainerItem) (*entities.ContainerItem, error)
	UpdateItem(ctx context.Context, caller entities.User, containerID, itemID uuid.UUID, modify entities.ContainerItemModify) (*entities.ContainerItem, error)
	DeleteItem(ctx context.Context, caller entities.User, containerID, itemID uuid.UUID) error
	ListItems(ctx context.Context, caller entities.User, containerID uuid.UUID) ([]entities.ContainerItem, error)
}
