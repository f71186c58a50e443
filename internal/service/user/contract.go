//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, u entities.User) (*entities.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter, visibleTo *uuid.UUID) ([]entities.User, error)
	Update(ctx context.Context, id uuid.UUID, modify entities.UserModify) (*entities.User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AreRelated(ctx context.Context, userID, relatedUserID uuid.UUID) (bool, error)
	CreateRelation(ctx context.Context, userID, relatedUserID uuid.UUID) error
	DeleteRelation(ctx context.Context, userID, relatedUserID uuid.UUID) (int64, error)
	ListRelated(ctx context.Context, userID uuid.UUID) ([]entities.User, error)
}

type IdentityCache interface {
	Get(key uuid.UUID) (entities.User, bool)
	Set(key uuid.UUID, value entities.User)
	Delete(key uuid.UUID)
	Purge() int
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
