//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Repository interface {
	Create(ctx context.Context, orderID, offerID uuid.UUID) (*entities.Shipment, error)
	GetByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Shipment, error)
	LockByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Shipment, error)
	List(ctx context.Context, scope access.Predicate, filter entities.ShipmentFilter) ([]entities.Shipment, error)
	Update(ctx context.Context, id uuid.UUID, modify entities.ShipmentModify) (*entities.Shipment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetNotice(ctx context.Context, id uuid.UUID) (*entities.ShipmentNotice, error)
}

// Notifier доставка уведомлений без ожидания результата.
type Notifier interface {
	Notify(ctx context.Context, event entities.ShipmentEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
