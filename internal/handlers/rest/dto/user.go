package dto

import (
	"time"

	"github.com/google/uuid"

	"freight/internal/entities"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CompanyName   *string   `json:"company_name"`
	ContactPerson *string   `json:"contact_person"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserUpdate struct {
	Name          *string          `json:"name"`
	Email         *string          `json:"email"`
	Role          *string          `json:"role"`
	CompanyName   Optional[string] `json:"company_name"`
	ContactPerson Optional[string] `json:"contact_person"`
	Phone         Optional[string] `json:"phone"`
	Address       Optional[string] `json:"address"`
}

type RelationCreate struct {
	RelatedUserID uuid.UUID `json:"related_user_id"`
}

func FromUser(u entities.User) User {
	return User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role.String(),
		CompanyName:   u.CompanyName,
		ContactPerson: u.ContactPerson,
		Phone:         u.Phone,
		Address:       u.Address,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func FromUsers(users []entities.User) []User {
	return mapSlice(users, FromUser)
}

func (u UserUpdate) ToModify() entities.UserModify {
	modify := entities.UserModify{
		Name:          u.Name,
		Email:         u.Email,
		CompanyName:   toNullableText(u.CompanyName),
		ContactPerson: toNullableText(u.ContactPerson),
		Phone:         toNullableText(u.Phone),
		Address:       toNullableText(u.Address),
	}
	if u.Role != nil {
		role := entities.UserRole(*u.Role)
		modify.Role = &role
	}
	return modify
}
