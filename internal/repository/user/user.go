package user

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
	"freight/internal/service/user"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, u entities.User) (*entities.User, error) {
	query, args, err := repository.QB.
		Insert("users").
		Columns("id", "name", "email", "role", "company_name", "contact_person", "phone", "address").
		Values(
			u.ID,
			u.Name,
			u.Email,
			u.Role.String(),
			u.CompanyName,
			u.ContactPerson,
			u.Phone,
			u.Address,
		).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	var model UserDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			if repository.PgConstraint(err) == "users_pkey" {
				return nil, fmt.Errorf("user already provisioned: %w", user.ErrUserExists)
			}
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var model UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

// List visibleTo ограничивает выборку самим пользователем и связанными с ним.
func (r *Repository) List(ctx context.Context, filter entities.UserFilter, visibleTo *uuid.UUID) ([]entities.User, error) {
	cond := sq.And{}
	if visibleTo != nil {
		cond = append(cond, sq.Or{
			sq.Eq{"id": *visibleTo},
			sq.Expr("id IN (SELECT related_user_id FROM user_relations WHERE user_id = ?)", *visibleTo),
		})
	}
	if filter.Role != nil {
		cond = append(cond, sq.Eq{"role": filter.Role.String()})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := repository.ContainsPattern(search)
		cond = append(cond, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"company_name": pattern},
		})
	}

	builder := repository.QB.
		Select(userColumns).
		From("users").
		Where(cond).
		OrderBy("created_at DESC", "id")
	builder = repository.Page(builder, filter.Limit, filter.Offset)

	return r.queryUsers(ctx, builder)
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, modify entities.UserModify) (*entities.User, error) {
	builder := repository.QB.Update("users")

	if modify.Name != nil {
		builder = builder.Set("name", *modify.Name)
	}
	if modify.Email != nil {
		builder = builder.Set("email", *modify.Email)
	}
	if modify.Role != nil {
		builder = builder.Set("role", modify.Role.String())
	}
	if modify.CompanyName.IsSet() {
		builder = builder.Set("company_name", modify.CompanyName.Ptr())
	}
	if modify.ContactPerson.IsSet() {
		builder = builder.Set("contact_person", modify.ContactPerson.Ptr())
	}
	if modify.Phone.IsSet() {
		builder = builder.Set("phone", modify.Phone.Ptr())
	}
	if modify.Address.IsSet() {
		builder = builder.Set("address", modify.Address.Ptr())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var model UserDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, user.ErrInvalidRole
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return user.ErrUserReferenced
		}
		return fmt.Errorf("unexpected user repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *Repository) AreRelated(ctx context.Context, userID, relatedUserID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM user_relations WHERE user_id = $1 AND related_user_id = $2
	)`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, userID, relatedUserID).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected user repository arerelated error: %w", err)
	}
	return exists, nil
}

// CreateRelation записывает обе стороны связи одним пакетом. Вызывается в транзакции.
func (r *Repository) CreateRelation(ctx context.Context, userID, relatedUserID uuid.UUID) error {
	const query = `INSERT INTO user_relations (user_id, related_user_id) VALUES ($1, $2)`

	batch := &pgx.Batch{}
	batch.Queue(query, userID, relatedUserID)
	batch.Queue(query, relatedUserID, userID)

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			switch {
			case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
				return user.ErrRelationExists
			case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
				return user.ErrUserReference
			case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
				return user.ErrSelfRelation
			}
			return fmt.Errorf("unexpected user repository createrelation error: %w", err)
		}
	}

	return nil
}

// DeleteRelation удаляет обе стороны связи и возвращает количество удаленных строк.
func (r *Repository) DeleteRelation(ctx context.Context, userID, relatedUserID uuid.UUID) (int64, error) {
	query := `DELETE FROM user_relations
		WHERE (user_id = $1 AND related_user_id = $2)
		   OR (user_id = $2 AND related_user_id = $1)`

	tag, err := r.querier.Exec(ctx, query, userID, relatedUserID)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository deleterelation error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListRelated(ctx context.Context, userID uuid.UUID) ([]entities.User, error) {
	builder := repository.QB.
		Select(prefixed("u", userColumns)).
		From("user_relations ur").
		Join("users u ON u.id = ur.related_user_id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("u.name", "u.id")

	return r.queryUsers(ctx, builder)
}

func (r *Repository) queryUsers(ctx context.Context, builder sq.SelectBuilder) ([]entities.User, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]UserDB, 0, 8)
	for rows.Next() {
		var model UserDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
