package container

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/access"
	"freight/internal/service/container"
	"freight/internal/service/shipment"
)

const linkContainerFK = "shipment_containers_container_id_fkey"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, c entities.Container) (*entities.Container, error) {
	query := `INSERT INTO containers (container_number, container_type, tare_weight, gross_weight)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + containerColumns

	var model ContainerDB
	err := r.querier.QueryRow(
		ctx,
		query,
		c.Number,
		c.Type,
		nullDecimal(c.TareWeight),
		nullDecimal(c.GrossWeight),
	).Scan(model.scanTargets()...)
	if err != nil {
		return nil, r.containerWriteError("create", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Container, error) {
	query := `SELECT ` + containerColumns + ` FROM containers WHERE id = $1`

	var model ContainerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, container.ErrContainerNotFound
		}
		return nil, fmt.Errorf("unexpected container repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ContainerFilter) ([]entities.Container, error) {
	builder := repository.QB.
		Select(containerColumns).
		From("containers").
		OrderBy("created_at DESC", "id")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := repository.ContainsPattern(search)
		builder = builder.Where(sq.Or{
			sq.ILike{"container_number": pattern},
			sq.ILike{"container_type": pattern},
		})
	}
	builder = repository.Page(builder, filter.Limit, filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository list error: %w", err)
	}
	defer rows.Close()

	containers := make([]entities.Container, 0, 8)
	for rows.Next() {
		var model ContainerDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected container repository list error: %w", err)
		}
		containers = append(containers, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected container repository list error: %w", err)
	}

	return containers, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, modify entities.ContainerModify) (*entities.Container, error) {
	builder := repository.QB.Update("containers")

	if modify.Number != nil {
		builder = builder.Set("container_number", *modify.Number)
	}
	if modify.Type != nil {
		builder = builder.Set("container_type", *modify.Type)
	}
	if modify.TareWeight.IsSet() {
		builder = builder.Set("tare_weight", modify.TareWeight.Ptr())
	}
	if modify.GrossWeight.IsSet() {
		builder = builder.Set("gross_weight", modify.GrossWeight.Ptr())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + containerColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository update error: %w", err)
	}

	var model ContainerDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, container.ErrContainerNotFound
		}
		return nil, r.containerWriteError("update", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return container.ErrContainerInUse
		}
		return fmt.Errorf("unexpected container repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return container.ErrContainerNotFound
	}

	return nil
}

func (r *Repository) containerWriteError(op string, err error) error {
	switch {
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return container.ErrNumberTaken
	case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
		return container.ErrInvalidWeight
	}
	return fmt.Errorf("unexpected container repository %s error: %w", op, err)
}

// Link повторная связь той же пары нарушает первичный ключ.
func (r *Repository) Link(ctx context.Context, containerID, shipmentID uuid.UUID) (*entities.ContainerLink, error) {
	query := `INSERT INTO shipment_containers (container_id, shipment_id)
		VALUES ($1, $2)
		RETURNING created_at`

	var createdAt time.Time
	err := r.querier.QueryRow(ctx, query, containerID, shipmentID).Scan(&createdAt)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, container.ErrAlreadyLinked
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			if repository.PgConstraint(err) == linkContainerFK {
				return nil, container.ErrContainerNotFound
			}
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected container repository link error: %w", err)
	}

	return &entities.ContainerLink{
		ContainerID: containerID,
		ShipmentID:  shipmentID,
		CreatedAt:   createdAt,
	}, nil
}

func (r *Repository) Unlink(ctx context.Context, containerID, shipmentID uuid.UUID) error {
	query := `DELETE FROM shipment_containers WHERE container_id = $1 AND shipment_id = $2`

	tag, err := r.querier.Exec(ctx, query, containerID, shipmentID)
	if err != nil {
		return fmt.Errorf("unexpected container repository unlink error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return container.ErrLinkNotFound
	}

	return nil
}

func (r *Repository) IsLinked(ctx context.Context, containerID, shipmentID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM shipment_containers WHERE container_id = $1 AND shipment_id = $2
	)`

	var linked bool
	if err := r.querier.QueryRow(ctx, query, containerID, shipmentID).Scan(&linked); err != nil {
		return false, fmt.Errorf("unexpected container repository islinked error: %w", err)
	}

	return linked, nil
}

func (r *Repository) DeleteItemsOfPair(ctx context.Context, containerID, shipmentID uuid.UUID) (int64, error) {
	query := `DELETE FROM container_items WHERE container_id = $1 AND shipment_id = $2`

	tag, err := r.querier.Exec(ctx, query, containerID, shipmentID)
	if err != nil {
		return 0, fmt.Errorf("unexpected container repository deleteitemsofpair error: %w", err)
	}

	return tag.RowsAffected(), nil
}

// AddItems вставляет позиции одним запросом.
func (r *Repository) AddItems(ctx context.Context, items []entities.ContainerItem) ([]entities.ContainerItem, error) {
	if len(items) == 0 {
		return []entities.ContainerItem{}, nil
	}

	builder := repository.QB.
		Insert("container_items").
		Columns("container_id", "shipment_id", "description", "quantity", "unit", "cn_code", "eu_code")
	for _, item := range items {
		builder = builder.Values(
			item.ContainerID,
			item.ShipmentID,
			item.Description,
			item.Quantity,
			item.Unit,
			item.CNCode,
			item.EUCode,
		)
	}

	query, args, err := builder.Suffix("RETURNING " + itemColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository additems error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, r.itemWriteError("additems", err)
	}
	defer rows.Close()

	created, err := scanItems(rows)
	if err != nil {
		return nil, r.itemWriteError("additems", err)
	}

	return created, nil
}

// GetItem позиция доступна по id, пока отправка в области видимости, в том числе после отвязки пары.
func (r *Repository) GetItem(
	ctx context.Context,
	containerID, itemID uuid.UUID,
	scope access.Predicate,
) (*entities.ContainerItem, error) {
	query, args, err := r.scopedItems(scope).
		Where(sq.Eq{"ci.container_id": containerID, "ci.id": itemID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository getitem error: %w", err)
	}

	var model ContainerItemDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, container.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected container repository getitem error: %w", err)
	}

	item := ItemToDomain(&model)
	return &item, nil
}

func (r *Repository) UpdateItem(ctx context.Context, itemID uuid.UUID, modify entities.ContainerItemModify) (*entities.ContainerItem, error) {
	builder := repository.QB.Update("container_items")

	if modify.Description != nil {
		builder = builder.Set("description", *modify.Description)
	}
	if modify.Quantity != nil {
		builder = builder.Set("quantity", *modify.Quantity)
	}
	if modify.Unit != nil {
		builder = builder.Set("unit", *modify.Unit)
	}
	if modify.CNCode.IsSet() {
		builder = builder.Set("cn_code", modify.CNCode.Ptr())
	}
	if modify.EUCode.IsSet() {
		builder = builder.Set("eu_code", modify.EUCode.Ptr())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": itemID}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository updateitem error: %w", err)
	}

	var model ContainerItemDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, container.ErrItemNotFound
		}
		return nil, r.itemWriteError("updateitem", err)
	}

	item := ItemToDomain(&model)
	return &item, nil
}

func (r *Repository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM container_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("unexpected container repository deleteitem error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return container.ErrItemNotFound
	}

	return nil
}

// ListItems позиции отвязанных пар не возвращаются.
func (r *Repository) ListItems(ctx context.Context, containerID uuid.UUID, scope access.Predicate) ([]entities.ContainerItem, error) {
	query, args, err := r.scopedItems(scope).
		Join("shipment_containers sc ON sc.container_id = ci.container_id AND sc.shipment_id = ci.shipment_id").
		Where(sq.Eq{"ci.container_id": containerID}).
		OrderBy("ci.created_at DESC", "ci.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository listitems error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository listitems error: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository listitems error: %w", err)
	}

	return items, nil
}

func (r *Repository) scopedItems(scope access.Predicate) sq.SelectBuilder {
	return repository.QB.
		Select(itemColumnsOf("ci")...).
		From("container_items ci").
		Join("shipments s ON s.id = ci.shipment_id").
		Join("orders ord ON ord.id = s.order_id").
		Where(repository.ScopeCond(scope, "ord.sender_id", "ord.receiver_id"))
}

func (r *Repository) itemWriteError(op string, err error) error {
	switch {
	case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
		return container.ErrNotLinked
	case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
		switch constraint := repository.PgConstraint(err); {
		case strings.Contains(constraint, "cn_code"):
			return container.ErrInvalidCNCode
		case strings.Contains(constraint, "eu_code"):
			return container.ErrInvalidEUCode
		}
		return container.ErrInvalidQuantity
	}
	return fmt.Errorf("unexpected container repository %s error: %w", op, err)
}

func scanItems(rows pgx.Rows) ([]entities.ContainerItem, error) {
	items := make([]entities.ContainerItem, 0, 4)
	for rows.Next() {
		var model ContainerItemDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, err
		}
		items = append(items, ItemToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
