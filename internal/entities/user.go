package entities

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin           UserRole = "Admin"
	RoleShipper         UserRole = "Shipper"
	RoleReceiver        UserRole = "Receiver"
	RoleForwardingAgent UserRole = "ForwardingAgent"
)

const DefaultUserRole = RoleShipper

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleShipper, RoleReceiver, RoleForwardingAgent:
		return true
	default:
		return false
	}
}

type User struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Role          UserRole
	CompanyName   *string
	ContactPerson *string
	Phone         *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserModify struct {
	ID            *uuid.UUID
	Name          *string
	Email         *string
	Role          *UserRole
	CompanyName   Nullable[string]
	ContactPerson Nullable[string]
	Phone         Nullable[string]
	Address       Nullable[string]
}

type UserFilter struct {
	Role   *UserRole
	Search string
	Limit  uint64
	Offset uint64
}

type UserRelation struct {
	UserID        uuid.UUID
	RelatedUserID uuid.UUID
	CreatedAt     time.Time
}

// Identity подтвержденная провайдером личность вызывающего.
type Identity struct {
	Subject  uuid.UUID
	Email    string
	Metadata map[string]any
}
