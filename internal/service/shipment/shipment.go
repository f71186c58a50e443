package shipment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Shipment struct {
	repository Repository
	notifier   Notifier
	txManager  TxManager
	now        func() time.Time
}

func New(
	repository Repository,
	notifier Notifier,
	txManager TxManager,
) *Shipment {
	return &Shipment{
		repository: repository,
		notifier:   notifier,
		txManager:  txManager,
		now:        time.Now,
	}
}

func (s *Shipment) GetShipment(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByID(ctx, id, access.For(caller))
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

func (s *Shipment) ListShipments(
	ctx context.Context,
	caller entities.User,
	filter entities.ShipmentFilter,
) ([]entities.Shipment, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	shipments, err := s.repository.List(ctx, access.For(caller), filter)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

// UpdateShipment частичное обновление. Уведомление уходит после коммита,
// только если статус действительно сменился на уведомляемый.
func (s *Shipment) UpdateShipment(
	ctx context.Context,
	caller entities.User,
	id uuid.UUID,
	modify entities.ShipmentModify,
) (*entities.Shipment, error) {
	if err := validateModify(modify); err != nil {
		return nil, err
	}

	scope := access.For(caller)

	var previous entities.ShipmentStatus
	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.LockByID(ctx, id, scope)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		previous = current.Status

		updated, err = s.repository.Update(ctx, id, modify)
		if err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != previous {
		s.notify(ctx, *updated)
	}

	return updated, nil
}

func (s *Shipment) DeleteShipment(ctx context.Context, caller entities.User, id uuid.UUID) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

// CreateForAcceptedOffer вызывается только внутри транзакции принятия предложения.
func (s *Shipment) CreateForAcceptedOffer(ctx context.Context, orderID, offerID uuid.UUID) (*entities.Shipment, error) {
	shipment, err := s.repository.Create(ctx, orderID, offerID)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return shipment, nil
}

// ShipmentNotice данные отправки и получатели письма, без проверки области видимости.
func (s *Shipment) ShipmentNotice(ctx context.Context, id uuid.UUID) (*entities.ShipmentNotice, error) {
	notice, err := s.repository.GetNotice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment notice: %w", err)
	}
	return notice, nil
}

func (s *Shipment) notify(ctx context.Context, shipment entities.Shipment) {
	kind, ok := shipment.Status.Notification()
	if !ok {
		return
	}

	s.notifier.Notify(context.WithoutCancel(ctx), entities.ShipmentEvent{
		ShipmentID: shipment.ID,
		Kind:       kind,
		Status:     shipment.Status,
		OccurredAt: s.now().UTC(),
	})
}
