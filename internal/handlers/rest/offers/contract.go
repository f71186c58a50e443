//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offers_test
package offers

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
	CreateOffer(ctx context.Context, caller entities.User, offer entities.Offer) (*entities.Offer, error)
	GetOffer(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.Offer, error)
	ListOffers(ctx context.Context, caller entities.User, filter entities.OfferFilter) ([]entities.Offer, error)
	UpdateOffer(ctx context.Context, caller entities.User, id uuid.UUID, modify entities.OfferModify) (*entities.Offer, error)
	DeleteOffer(ctx context.Context, caller entities.User, id uuid.UUID) error
	SetOfferStatus(ctx context.Context, caller entities.User, id uuid.UUID, action entities.OfferAction) (*entities.OfferTransition, error)
}
