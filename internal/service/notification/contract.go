//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"github.com/google/uuid"

	"freight/internal/entities"
)

type ShipmentService interface {
	ShipmentNotice(ctx context.Context, id uuid.UUID) (*entities.ShipmentNotice, error)
}

type Mailer interface {
	Send(ctx context.Context, mail entities.Mail) error
}
