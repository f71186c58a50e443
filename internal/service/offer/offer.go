package offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
	"freight/internal/service/order"
	"freight/pkg/tx"
)

type Offer struct {
	repository      Repository
	orderService    OrderService
	shipmentService ShipmentService
	txManager       TxManager
}

func New(
	repository Repository,
	orderService OrderService,
	shipmentService ShipmentService,
	txManager TxManager,
) *Offer {
	return &Offer{
		repository:      repository,
		orderService:    orderService,
		shipmentService: shipmentService,
		txManager:       txManager,
	}
}

// CreateOffer новое предложение переводит заказ в Offered.
func (o *Offer) CreateOffer(ctx context.Context, caller entities.User, offer entities.Offer) (*entities.Offer, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	if offer.Currency == "" {
		offer.Currency = entities.DefaultCurrency
	}
	if err := validateCreate(offer); err != nil {
		return nil, err
	}

	var created *entities.Offer
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		ord, err := o.lockOrder(ctx, offer.OrderID)
		if err != nil {
			return err
		}
		if !ord.Status.AcceptsOffers() {
			return ErrOrderClosed
		}

		created, err = o.repository.Create(ctx, offer)
		if err != nil {
			return fmt.Errorf("create offer: %w", err)
		}

		if ord.Status != entities.OrderOffered {
			if err := o.orderService.SetOrderStatus(ctx, ord.ID, entities.OrderOffered); err != nil {
				return fmt.Errorf("mark order offered: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (o *Offer) GetOffer(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Offer, error) {
	offer, err := o.repository.GetByID(ctx, id, access.For(caller))
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return offer, nil
}

func (o *Offer) ListOffers(ctx context.Context, caller entities.User, filter entities.OfferFilter) ([]entities.Offer, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	offers, err := o.repository.List(ctx, access.For(caller), filter)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

// UpdateOffer статус предложения здесь не меняется.
func (o *Offer) UpdateOffer(
	ctx context.Context,
	caller entities.User,
	id uuid.UUID,
	modify entities.OfferModify,
) (*entities.Offer, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if err := validateModify(modify); err != nil {
		return nil, err
	}

	offer, err := o.repository.Update(ctx, id, modify)
	if err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}
	return offer, nil
}

// DeleteOffer после удаления последнего предложения заказ возвращается в Pending.
func (o *Offer) DeleteOffer(ctx context.Context, caller entities.User, id uuid.UUID) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	return o.txManager.Do(ctx, func(ctx context.Context) error {
		deleted, err := o.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete offer: %w", err)
		}

		remaining, err := o.repository.CountByOrder(ctx, deleted.OrderID)
		if err != nil {
			return fmt.Errorf("count order offers: %w", err)
		}
		if remaining > 0 {
			return nil
		}

		ord, err := o.orderService.LockOrder(ctx, deleted.OrderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		if ord.Status != entities.OrderOffered {
			return nil
		}

		if err := o.orderService.SetOrderStatus(ctx, ord.ID, entities.OrderPending); err != nil {
			return fmt.Errorf("reset order status: %w", err)
		}
		return nil
	})
}

// SetOfferStatus принимает или отклоняет ожидающее предложение.
//
// Принятие в одной транзакции: условный переход Pending -> Accepted, удаление остальных
// ожидающих предложений заказа, создание единственной отправки и перевод заказа в Accepted.
// Отклонение возвращает заказ в Pending. Проигравшая конкурентная транзакция получает
// ErrOfferAlreadyProcessed без повтора.
func (o *Offer) SetOfferStatus(
	ctx context.Context,
	caller entities.User,
	id uuid.UUID,
	action entities.OfferAction,
) (*entities.OfferTransition, error) {
	if action != entities.OfferAccept && action != entities.OfferReject {
		return nil, ErrInvalidAction
	}

	scope := access.For(caller)

	var transition entities.OfferTransition
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, id, scope)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}
		if current.Status != entities.OfferPending {
			return ErrOfferAlreadyProcessed
		}

		ord, err := o.lockOrder(ctx, current.OrderID)
		if err != nil {
			return err
		}

		if action == entities.OfferReject {
			return o.reject(ctx, id, ord, &transition)
		}
		return o.accept(ctx, id, ord, &transition)
	})
	if err != nil {
		if errors.Is(err, tx.ErrConcurrentUpdate) {
			return nil, errors.Join(ErrOfferAlreadyProcessed, err)
		}
		return nil, err
	}

	return &transition, nil
}

func (o *Offer) accept(ctx context.Context, id uuid.UUID, ord *entities.Order, transition *entities.OfferTransition) error {
	if !ord.Status.AcceptsOffers() {
		return ErrOrderClosed
	}

	accepted, err := o.repository.TransitionStatus(ctx, id, entities.OfferPending, entities.OfferAccepted)
	if err != nil {
		return fmt.Errorf("accept offer: %w", err)
	}

	if _, err := o.repository.DeletePendingSiblings(ctx, ord.ID, id); err != nil {
		return fmt.Errorf("delete sibling offers: %w", err)
	}

	shipment, err := o.shipmentService.CreateForAcceptedOffer(ctx, ord.ID, id)
	if err != nil {
		return fmt.Errorf("create shipment: %w", err)
	}

	if err := o.orderService.SetOrderStatus(ctx, ord.ID, entities.OrderAccepted); err != nil {
		return fmt.Errorf("mark order accepted: %w", err)
	}
	ord.Status = entities.OrderAccepted

	*transition = entities.OfferTransition{
		Offer:    *accepted,
		Order:    *ord,
		Shipment: shipment,
	}
	return nil
}

func (o *Offer) reject(ctx context.Context, id uuid.UUID, ord *entities.Order, transition *entities.OfferTransition) error {
	rejected, err := o.repository.TransitionStatus(ctx, id, entities.OfferPending, entities.OfferRejected)
	if err != nil {
		return fmt.Errorf("reject offer: %w", err)
	}

	if err := o.orderService.SetOrderStatus(ctx, ord.ID, entities.OrderPending); err != nil {
		return fmt.Errorf("reset order status: %w", err)
	}
	ord.Status = entities.OrderPending

	*transition = entities.OfferTransition{
		Offer: *rejected,
		Order: *ord,
	}
	return nil
}

func (o *Offer) lockOrder(ctx context.Context, orderID uuid.UUID) (*entities.Order, error) {
	ord, err := o.orderService.LockOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderReference
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}
	return ord, nil
}
