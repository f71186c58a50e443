//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Repository interface {
	Create(ctx context.Context, o entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Order, error)
	LockByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	List(ctx context.Context, scope access.Predicate, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, id uuid.UUID, modify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id uuid.UUID, scope access.Predicate) error
	SetStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error

	ReplaceCargo(ctx context.Context, orderID uuid.UUID, lines []entities.CargoLine) ([]entities.OrderCargo, error)
	ListCargo(ctx context.Context, orderIDs ...uuid.UUID) ([]entities.OrderCargo, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
