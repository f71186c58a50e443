//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_test
package users

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetUser(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.User, error)
	ListUsers(ctx context.Context, caller entities.User, filter entities.UserFilter) ([]entities.User, error)
	UpdateUser(ctx context.Context, caller entities.User, id uuid.UUID, modify entities.UserModify) (*entities.User, error)
	DeleteUser(ctx context.Context, caller entities.User, id uuid.UUID) error
	AddRelation(ctx context.Context, caller entities.User, userID, relatedUserID uuid.UUID) (*entities.User, error)
	RemoveRelation(ctx context.Context, caller entities.User, userID, relatedUserID uuid.UUID) error
	ListRelations(ctx context.Context, caller entities.User, userID uuid.UUID) ([]entities.User, error)
}
