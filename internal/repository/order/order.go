package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/access"
	"freight/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create код заказа генерирует база.
func (r *Repository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (sender_id, receiver_id, from_port, to_port, delivery_type, incoterm, load_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns

	var model OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		o.SenderID,
		o.ReceiverID,
		o.FromPort,
		o.ToPort,
		o.DeliveryType.String(),
		o.Incoterm.String(),
		o.LoadDate,
	).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, order.ErrParticipantReference
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, order.ErrSameParticipants
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Order, error) {
	query, args, err := repository.QB.
		Select(orderColumns).
		From("orders").
		Where(sq.And{
			repository.ScopeCond(scope, "sender_id", "receiver_id"),
			sq.Eq{"id": id},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var model OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

// LockByID блокирует строку заказа до конца транзакции.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

	var model OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository lockbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) List(ctx context.Context, scope access.Predicate, filter entities.OrderFilter) ([]entities.Order, error) {
	cond := sq.And{repository.ScopeCond(scope, "sender_id", "receiver_id")}

	if filter.Status != nil {
		cond = append(cond, sq.Eq{"status": filter.Status.String()})
	}
	if filter.SenderID != nil {
		cond = append(cond, sq.Eq{"sender_id": *filter.SenderID})
	}
	if filter.ReceiverID != nil {
		cond = append(cond, sq.Eq{"receiver_id": *filter.ReceiverID})
	}
	if filter.CounterpartID != nil {
		cond = append(cond, sq.Or{
			sq.Eq{"sender_id": *filter.CounterpartID},
			sq.Eq{"receiver_id": *filter.CounterpartID},
		})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := repository.ContainsPattern(search)
		cond = append(cond, sq.Or{
			sq.ILike{"code": pattern},
			sq.ILike{"from_port": pattern},
			sq.ILike{"to_port": pattern},
		})
	}

	builder := repository.QB.
		Select(orderColumns).
		From("orders").
		Where(cond).
		OrderBy("created_at DESC", "id")
	builder = repository.Page(builder, filter.Limit, filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 8)
	for rows.Next() {
		var model OrderDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orders = append(orders, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return orders, nil
}

// Update права проверяет сервис, строка уже прочитана в той же транзакции.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, modify entities.OrderModify) (*entities.Order, error) {
	builder := repository.QB.Update("orders")

	if modify.SenderID != nil {
		builder = builder.Set("sender_id", *modify.SenderID)
	}
	if modify.ReceiverID != nil {
		builder = builder.Set("receiver_id", *modify.ReceiverID)
	}
	if modify.FromPort != nil {
		builder = builder.Set("from_port", *modify.FromPort)
	}
	if modify.ToPort != nil {
		builder = builder.Set("to_port", *modify.ToPort)
	}
	if modify.DeliveryType != nil {
		builder = builder.Set("delivery_type", modify.DeliveryType.String())
	}
	if modify.Incoterm != nil {
		builder = builder.Set("incoterm", modify.Incoterm.String())
	}
	if modify.LoadDate.IsSet() {
		builder = builder.Set("load_date", modify.LoadDate.Ptr())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var model OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, order.ErrOrderNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, order.ErrParticipantReference
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, order.ErrSameParticipants
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID, scope access.Predicate) error {
	query, args, err := repository.QB.
		Delete("orders").
		Where(sq.And{
			repository.ScopeCond(scope, "sender_id", "receiver_id"),
			sq.Eq{"id": id},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return order.ErrInvalidStatus
		}
		return fmt.Errorf("unexpected order repository setstatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// ReplaceCargo удаляет все строки груза заказа и вставляет переданные.
// Пустой lines просто очищает груз. Вызывается в транзакции.
func (r *Repository) ReplaceCargo(ctx context.Context, orderID uuid.UUID, lines []entities.CargoLine) ([]entities.OrderCargo, error) {
	if _, err := r.querier.Exec(ctx, `DELETE FROM order_cargo WHERE order_id = $1`, orderID); err != nil {
		return nil, fmt.Errorf("unexpected order repository replacecargo error: %w", err)
	}

	if len(lines) == 0 {
		return []entities.OrderCargo{}, nil
	}

	builder := repository.QB.
		Insert("order_cargo").
		Columns("order_id", "cargo_unit", "quantity")
	for _, line := range lines {
		builder = builder.Values(orderID, line.Unit.String(), line.Quantity)
	}

	query, args, err := builder.
		Suffix("RETURNING id, order_id, cargo_unit, quantity, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository replacecargo error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, r.cargoError(err)
	}
	defer rows.Close()

	cargo, err := scanCargo(rows)
	if err != nil {
		return nil, r.cargoError(err)
	}

	return cargo, nil
}

// ListCargo строки груза для набора заказов.
func (r *Repository) ListCargo(ctx context.Context, orderIDs ...uuid.UUID) ([]entities.OrderCargo, error) {
	if len(orderIDs) == 0 {
		return []entities.OrderCargo{}, nil
	}

	query, args, err := repository.QB.
		Select("id", "order_id", "cargo_unit", "quantity", "created_at").
		From("order_cargo").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listcargo error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listcargo error: %w", err)
	}
	defer rows.Close()

	cargo, err := scanCargo(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listcargo error: %w", err)
	}

	return cargo, nil
}

func (r *Repository) cargoError(err error) error {
	if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
		return order.ErrInvalidCargoQuantity
	}
	return fmt.Errorf("unexpected order repository replacecargo error: %w", err)
}

func scanCargo(rows pgx.Rows) ([]entities.OrderCargo, error) {
	cargo := make([]entities.OrderCargo, 0, 4)
	for rows.Next() {
		var model OrderCargoDB
		if err := rows.Scan(&model.ID, &model.OrderID, &model.Unit, &model.Quantity, &model.CreatedAt); err != nil {
			return nil, err
		}
		cargo = append(cargo, CargoToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cargo, nil
}
