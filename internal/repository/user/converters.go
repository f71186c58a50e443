package user

import (
	"freight/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          entities.UserRole(u.Role),
		CompanyName:   u.CompanyName,
		ContactPerson: u.ContactPerson,
		Phone:         u.Phone,
		Address:       u.Address,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	result := make([]entities.User, len(usersDB))
	for i := range usersDB {
		result[i] = *ToDomain(&usersDB[i])
	}
	return result
}
