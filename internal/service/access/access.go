// Package access определяет область видимости заказов для вызывающего.
// Предложения, отправки и позиции контейнеров видимы через свой заказ.
package access

import (
	"github.com/google/uuid"

	"freight/internal/entities"
)

// Predicate либо без ограничений, либо "отправитель или получатель = userID".
// Нулевое значение не пропускает ни одной строки.
type Predicate struct {
	unrestricted bool
	userID       uuid.UUID
}

func Unrestricted() Predicate {
	return Predicate{unrestricted: true}
}

func OwnedByEither(userID uuid.UUID) Predicate {
	return Predicate{userID: userID}
}

func For(caller entities.User) Predicate {
	if caller.IsAdmin() {
		return Unrestricted()
	}
	return OwnedByEither(caller.ID)
}

func (p Predicate) IsUnrestricted() bool {
	return p.unrestricted
}

// Owner id участника для ограниченного предиката.
func (p Predicate) Owner() (uuid.UUID, bool) {
	if p.unrestricted || p.userID == uuid.Nil {
		return uuid.Nil, false
	}
	return p.userID, true
}

func (p Predicate) Allows(senderID, receiverID uuid.UUID) bool {
	if p.unrestricted {
		return true
	}
	if p.userID == uuid.Nil {
		return false
	}
	return senderID == p.userID || receiverID == p.userID
}

func (p Predicate) AllowsOrder(order entities.Order) bool {
	return p.Allows(order.SenderID, order.ReceiverID)
}
