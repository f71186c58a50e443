//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_test
package container

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Repository interface {
	Create(ctx context.Context, c entities.Container) (*entities.Container, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Container, error)
	List(ctx context.Context, filter entities.ContainerFilter) ([]entities.Container, error)
	Update(ctx context.Context, id uuid.UUID, modify entities.ContainerModify) (*entities.Container, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Link(ctx context.Context, containerID, shipmentID uuid.UUID) (*entities.ContainerLink, error)
	Unlink(ctx context.Context, containerID, shipmentID uuid.UUID) error
	IsLinked(ctx context.Context, containerID, shipmentID uuid.UUID) (bool, error)
	DeleteItemsOfPair(ctx context.Context, containerID, shipmentID uuid.UUID) (int64, error)

	AddItems(ctx context.Context, items []entities.ContainerItem) ([]entities.ContainerItem, error)
	GetItem(ctx context.Context, containerID, itemID uuid.UUID, scope access.Predicate) (*entities.ContainerItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, modify entities.ContainerItemModify) (*entities.ContainerItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ListItems(ctx context.Context, containerID uuid.UUID, scope access.Predicate) ([]entities.ContainerItem, error)
}

// ShipmentService видимость отправок проверяется через их заказ.
type ShipmentService interface {
	GetShipment(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Shipment, error)
	ListShipments(ctx context.Context, caller entities.User, filter entities.ShipmentFilter) ([]entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
