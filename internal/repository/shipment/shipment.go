package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/access"
	"freight/internal/service/shipment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create одна отправка на предложение обеспечивается UNIQUE(offer_id).
func (r *Repository) Create(ctx context.Context, orderID, offerID uuid.UUID) (*entities.Shipment, error) {
	query := `INSERT INTO shipments (order_id, offer_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + shipmentColumns

	var model ShipmentDB
	err := r.querier.QueryRow(ctx, query, orderID, offerID, entities.ShipmentInPlanning.String()).
		Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, shipment.ErrShipmentExists
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, shipment.ErrOrderReference
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Shipment, error) {
	return r.getByID(ctx, id, scope, false)
}

// LockByID то же, что GetByID, но блокирует строку отправки до конца транзакции.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Shipment, error) {
	return r.getByID(ctx, id, scope, true)
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, scope access.Predicate, lock bool) (*entities.Shipment, error) {
	builder := repository.QB.
		Select(shipmentColumnsOf("s")...).
		From("shipments s").
		Join("orders ord ON ord.id = s.order_id").
		Where(sq.And{
			repository.ScopeCond(scope, "ord.sender_id", "ord.receiver_id"),
			sq.Eq{"s.id": id},
		})
	if lock {
		builder = builder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	var model ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) List(ctx context.Context, scope access.Predicate, filter entities.ShipmentFilter) ([]entities.Shipment, error) {
	cond := sq.And{repository.ScopeCond(scope, "ord.sender_id", "ord.receiver_id")}

	if filter.OrderID != nil {
		cond = append(cond, sq.Eq{"s.order_id": *filter.OrderID})
	}
	if filter.Status != nil {
		cond = append(cond, sq.Eq{"s.status": filter.Status.String()})
	}
	if filter.ContainerID != nil {
		cond = append(cond, sq.Expr(
			"s.id IN (SELECT shipment_id FROM shipment_containers WHERE container_id = ?)",
			*filter.ContainerID,
		))
	}

	builder := repository.QB.
		Select(shipmentColumnsOf("s")...).
		From("shipments s").
		Join("orders ord ON ord.id = s.order_id").
		Where(cond).
		OrderBy("s.created_at DESC", "s.id")
	builder = repository.Page(builder, filter.Limit, filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipments := make([]entities.Shipment, 0, 8)
	for rows.Next() {
		var model ShipmentDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		shipments = append(shipments, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return shipments, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, modify entities.ShipmentModify) (*entities.Shipment, error) {
	builder := repository.QB.Update("shipments")

	if modify.ShipmentNumber.IsSet() {
		builder = builder.Set("shipment_number", modify.ShipmentNumber.Ptr())
	}
	if modify.TrackingLink.IsSet() {
		builder = builder.Set("tracking_link", modify.TrackingLink.Ptr())
	}
	if modify.DepartureDate.IsSet() {
		builder = builder.Set("departure_date", modify.DepartureDate.Ptr())
	}
	if modify.ArrivalDate.IsSet() {
		builder = builder.Set("arrival_date", modify.ArrivalDate.Ptr())
	}
	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + shipmentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var model ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, shipment.ErrShipmentNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, shipment.ErrInvalidStatus
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

// GetNotice отправка вместе с маршрутом заказа и его участниками.
func (r *Repository) GetNotice(ctx context.Context, id uuid.UUID) (*entities.ShipmentNotice, error) {
	query, args, err := repository.QB.
		Select(append(shipmentColumnsOf("s"), "ord.code", "ord.from_port", "ord.to_port")...).
		From("shipments s").
		Join("orders ord ON ord.id = s.order_id").
		Where(sq.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getnotice error: %w", err)
	}

	var (
		model  ShipmentDB
		notice entities.ShipmentNotice
	)
	targets := append(model.scanTargets(), &notice.OrderCode, &notice.FromPort, &notice.ToPort)
	if err := r.querier.QueryRow(ctx, query, args...).Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getnotice error: %w", err)
	}
	notice.Shipment = *ToDomain(&model)

	recipientsQuery := `SELECT u.id, u.name, u.email, u.role
		FROM orders ord
		JOIN users u ON u.id IN (ord.sender_id, ord.receiver_id)
		WHERE ord.id = $1
		ORDER BY u.name, u.id`

	rows, err := r.querier.Query(ctx, recipientsQuery, model.OrderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getnotice error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipient RecipientDB
		if err := rows.Scan(&recipient.ID, &recipient.Name, &recipient.Email, &recipient.Role); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getnotice error: %w", err)
		}
		notice.Recipients = append(notice.Recipients, RecipientToDomain(&recipient))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getnotice error: %w", err)
	}

	return &notice, nil
}
