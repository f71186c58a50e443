package user

import (
	"net/mail"
	"strings"

	"freight/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateModify(modify entities.UserModify) error {
	if modify.Name == nil &&
		modify.Email == nil &&
		modify.Role == nil &&
		!modify.CompanyName.IsSet() &&
		!modify.ContactPerson.IsSet() &&
		!modify.Phone.IsSet() &&
		!modify.Address.IsSet() {
		return ErrNoFieldsToUpdate
	}

	if modify.Name != nil && !isValidName(*modify.Name) {
		return ErrInvalidName
	}
	if modify.Email != nil && !isValidEmail(*modify.Email) {
		return ErrInvalidEmail
	}
	if modify.Role != nil && !modify.Role.IsValid() {
		return ErrInvalidRole
	}

	return nil
}

// profileFromIdentity профиль для первого входа. Роль Admin из метаданных не принимается.
func profileFromIdentity(identity entities.Identity) entities.User {
	name := metadataString(identity.Metadata, "full_name")
	if name == "" {
		name = metadataString(identity.Metadata, "name")
	}
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}

	role := entities.DefaultUserRole
	if claimed := entities.UserRole(metadataString(identity.Metadata, "role")); claimed.IsValid() && claimed != entities.RoleAdmin {
		role = claimed
	}

	return entities.User{
		ID:    identity.Subject,
		Name:  name,
		Email: identity.Email,
		Role:  role,
	}
}

func metadataString(metadata map[string]any, key string) string {
	v, ok := metadata[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
