package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(
	repository Repository,
	txManager TxManager,
) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateOrder заказ и строки груза записываются в одной транзакции.
func (o *Order) CreateOrder(
	ctx context.Context,
	caller entities.User,
	order entities.Order,
	cargo []entities.CargoLine,
) (*entities.Order, error) {
	if err := validateCreate(order, cargo); err != nil {
		return nil, err
	}

	if !access.For(caller).AllowsOrder(order) {
		return nil, ErrNotParticipant
	}

	var created *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = o.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		created.Cargo, err = o.repository.ReplaceCargo(ctx, created.ID, cargo)
		if err != nil {
			return fmt.Errorf("create order cargo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (o *Order) GetOrder(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Order, error) {
	order, err := o.repository.GetByID(ctx, id, access.For(caller))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	order.Cargo, err = o.repository.ListCargo(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order cargo: %w", err)
	}

	return order, nil
}

func (o *Order) ListOrders(ctx context.Context, caller entities.User, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	orders, err := o.repository.List(ctx, access.For(caller), filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	cargo, err := o.repository.ListCargo(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("list orders cargo: %w", err)
	}

	byOrder := make(map[uuid.UUID][]entities.OrderCargo, len(orders))
	for _, line := range cargo {
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line)
	}
	for i := range orders {
		orders[i].Cargo = byOrder[orders[i].ID]
		if orders[i].Cargo == nil {
			orders[i].Cargo = []entities.OrderCargo{}
		}
	}

	return orders, nil
}

// UpdateOrder Cargo == nil оставляет груз как есть, пустой слайс очищает его.
func (o *Order) UpdateOrder(
	ctx context.Context,
	caller entities.User,
	id uuid.UUID,
	modify entities.OrderModify,
) (*entities.Order, error) {
	if err := validateModify(modify); err != nil {
		return nil, err
	}

	scope := access.For(caller)

	var updated *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, id, scope)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := checkParticipants(scope, *current, modify); err != nil {
			return err
		}

		updated = current
		if hasOrderFields(modify) {
			updated, err = o.repository.Update(ctx, id, modify)
			if err != nil {
				return fmt.Errorf("update order: %w", err)
			}
		}

		if modify.Cargo != nil {
			updated.Cargo, err = o.repository.ReplaceCargo(ctx, id, *modify.Cargo)
			if err != nil {
				return fmt.Errorf("replace order cargo: %w", err)
			}
			return nil
		}

		updated.Cargo, err = o.repository.ListCargo(ctx, id)
		if err != nil {
			return fmt.Errorf("get order cargo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (o *Order) DeleteOrder(ctx context.Context, caller entities.User, id uuid.UUID) error {
	if err := o.repository.Delete(ctx, id, access.For(caller)); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// SetOrderStatus статус заказа меняет только обработка предложений.
func (o *Order) SetOrderStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if err := o.repository.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	return nil
}

// LockOrder блокирует заказ в текущей транзакции и возвращает его вместе с грузом.
func (o *Order) LockOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	order, err := o.repository.LockByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock order: %w", err)
	}

	order.Cargo, err = o.repository.ListCargo(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order cargo: %w", err)
	}
	return order, nil
}

// checkParticipants после смены участников отправитель и получатель различны,
// а не-администратор остается одним из них.
func checkParticipants(scope access.Predicate, current entities.Order, modify entities.OrderModify) error {
	next := current
	if modify.SenderID != nil {
		next.SenderID = *modify.SenderID
	}
	if modify.ReceiverID != nil {
		next.ReceiverID = *modify.ReceiverID
	}

	if next.SenderID == next.ReceiverID {
		return ErrSameParticipants
	}
	if !scope.AllowsOrder(next) {
		return ErrNotParticipant
	}
	return nil
}
