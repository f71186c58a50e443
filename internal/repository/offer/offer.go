package offer

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
	"freight/internal/service/offer"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, o entities.Offer) (*entities.Offer, error) {
	query := `INSERT INTO offers (order_id, carrier, freight_cost, port_surcharge, trucking_cost, customs_cost, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + offerColumns

	var model OfferDB
	err := r.querier.QueryRow(
		ctx,
		query,
		o.OrderID,
		o.Carrier,
		nullDecimal(o.FreightCost),
		nullDecimal(o.PortSurcharge),
		nullDecimal(o.TruckingCost),
		nullDecimal(o.CustomsCost),
		o.Currency,
	).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, offer.ErrOrderReference
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, offer.ErrInvalidCost
		}
		return nil, fmt.Errorf("unexpected offer repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

// GetByID предложение видно, если виден его заказ.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, scope access.Predicate) (*entities.Offer, error) {
	query, args, err := repository.QB.
		Select(offerColumnsOf("o")...).
		From("offers o").
		Join("orders ord ON ord.id = o.order_id").
		Where(sq.And{
			repository.ScopeCond(scope, "ord.sender_id", "ord.receiver_id"),
			sq.Eq{"o.id": id},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository getbyid error: %w", err)
	}

	var model OfferDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offer.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) List(ctx context.Context, scope access.Predicate, filter entities.OfferFilter) ([]entities.Offer, error) {
	cond := sq.And{repository.ScopeCond(scope, "ord.sender_id", "ord.receiver_id")}

	if filter.OrderID != nil {
		cond = append(cond, sq.Eq{"o.order_id": *filter.OrderID})
	}
	if filter.Status != nil {
		cond = append(cond, sq.Eq{"o.status": filter.Status.String()})
	}

	builder := repository.QB.
		Select(offerColumnsOf("o")...).
		From("offers o").
		Join("orders ord ON ord.id = o.order_id").
		Where(cond).
		OrderBy("o.created_at DESC", "o.id")
	builder = repository.Page(builder, filter.Limit, filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}
	defer rows.Close()

	offers := make([]entities.Offer, 0, 8)
	for rows.Next() {
		var model OfferDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
		}
		offers = append(offers, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}

	return offers, nil
}

// Update статус и заказ предложения здесь не меняются.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, modify entities.OfferModify) (*entities.Offer, error) {
	builder := repository.QB.Update("offers")

	if modify.Carrier != nil {
		builder = builder.Set("carrier", *modify.Carrier)
	}
	if modify.FreightCost.IsSet() {
		builder = builder.Set("freight_cost", modify.FreightCost.Ptr())
	}
	if modify.PortSurcharge.IsSet() {
		builder = builder.Set("port_surcharge", modify.PortSurcharge.Ptr())
	}
	if modify.TruckingCost.IsSet() {
		builder = builder.Set("trucking_cost", modify.TruckingCost.Ptr())
	}
	if modify.CustomsCost.IsSet() {
		builder = builder.Set("customs_cost", modify.CustomsCost.Ptr())
	}
	if modify.Currency != nil {
		builder = builder.Set("currency", *modify.Currency)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + offerColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	var model OfferDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, offer.ErrOfferNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, offer.ErrInvalidCost
		}
		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

// Delete возвращает удаленное предложение. Предложение с отправкой удалить нельзя.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	query := `DELETE FROM offers WHERE id = $1 RETURNING ` + offerColumns

	var model OfferDB
	err := r.querier.QueryRow(ctx, query, id).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, offer.ErrOfferNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, offer.ErrOfferHasShipment
		}
		return nil, fmt.Errorf("unexpected offer repository delete error: %w", err)
	}

	return ToDomain(&model), nil
}

// TransitionStatus условное обновление: строка меняется, только если статус равен from.
// Ноль затронутых строк означает, что предложение уже обработано.
func (r *Repository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entities.OfferStatus,
) (*entities.Offer, error) {
	query := `UPDATE offers SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + offerColumns

	var model OfferDB
	err := r.querier.QueryRow(ctx, query, id, from.String(), to.String()).Scan(model.scanTargets()...)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, offer.ErrOfferAlreadyProcessed
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			// partial unique index: у заказа уже есть принятое предложение
			return nil, offer.ErrOrderClosed
		}
		return nil, fmt.Errorf("unexpected offer repository transitionstatus error: %w", err)
	}

	return ToDomain(&model), nil
}

// DeletePendingSiblings удаляет остальные ожидающие предложения заказа.
func (r *Repository) DeletePendingSiblings(ctx context.Context, orderID, keepID uuid.UUID) (int64, error) {
	query := `DELETE FROM offers WHERE order_id = $1 AND id <> $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, orderID, keepID, entities.OfferPending.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository deletependingsiblings error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int, error) {
	var count int
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM offers WHERE order_id = $1`, orderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository countbyorder error: %w", err)
	}

	return count, nil
}
