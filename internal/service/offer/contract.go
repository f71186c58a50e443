//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_test
package offer

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Repository interface {
	Create(ctx context.Context, o entities.Offer) (*entities.Offer, error)
	GetByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Offer, error)
	List(ctx context.Context, scope access.Predicate, filter entities.OfferFilter) ([]entities.Offer, error)
	Update(ctx context.Context, id uuid.UUID, modify entities.OfferModify) (*entities.Offer, error)
	Delete(ctx context.Context, id uuid.UUID) (*entities.Offer, error)

	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entities.OfferStatus) (*entities.Offer, error)
	DeletePendingSiblings(ctx context.Context, orderID, keepID uuid.UUID) (int64, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int, error)
}

type OrderService interface {
	LockOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	SetOrderStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error
}

type ShipmentService interface {
	CreateForAcceptedOffer(ctx context.Context, orderID, offerID uuid.UUID) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
