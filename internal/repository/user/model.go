package user

import (
	"time"

	"github.com/google/uuid"
)

type UserDB struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Role          string
	CompanyName   *string
	ContactPerson *string
	Phone         *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const userColumns = "id, name, email, role, company_name, contact_person, phone, address, created_at, updated_at"

func (u *UserDB) scanTargets() []interface{} {
	return []interface{}{
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.CompanyName,
		&u.ContactPerson,
		&u.Phone,
		&u.Address,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}
