package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"freight/internal/entities"
)

type User struct {
	repository Repository
	cache      IdentityCache
	txManager  TxManager
	group      singleflight.Group
}

func New(
	repository Repository,
	cache IdentityCache,
	txManager TxManager,
) *User {
	return &User{
		repository: repository,
		cache:      cache,
		txManager:  txManager,
	}
}

// ResolveIdentity возвращает профиль по подтвержденной личности, создавая его при первом входе.
// Одновременные первые входы одного subject схлопываются в один запрос к базе.
func (u *User) ResolveIdentity(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	if identity.Subject == uuid.Nil {
		return nil, ErrInvalidIdentity
	}

	if cached, ok := u.cache.Get(identity.Subject); ok {
		return &cached, nil
	}

	v, err, _ := u.group.Do(identity.Subject.String(), func() (interface{}, error) {
		profile, err := u.loadOrProvision(ctx, identity)
		if err != nil {
			return nil, err
		}
		u.cache.Set(profile.ID, *profile)
		return *profile, nil
	})
	if err != nil {
		return nil, err
	}

	profile := v.(entities.User)
	return &profile, nil
}

func (u *User) loadOrProvision(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	profile, err := u.repository.GetByID(ctx, identity.Subject)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("get user by subject: %w", err)
	}

	newProfile := profileFromIdentity(identity)
	if !isValidEmail(newProfile.Email) {
		return nil, ErrInvalidIdentity
	}

	profile, err = u.repository.Create(ctx, newProfile)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrUserExists) {
		return nil, fmt.Errorf("provision user: %w", err)
	}

	// профиль создал другой экземпляр сервиса
	profile, err = u.repository.GetByID(ctx, identity.Subject)
	if err != nil {
		return nil, fmt.Errorf("get provisioned user: %w", err)
	}
	return profile, nil
}

// GetUser пользователь видит себя и связанных с ним пользователей.
func (u *User) GetUser(ctx context.Context, caller entities.User, id uuid.UUID) (*entities.User, error) {
	if !caller.IsAdmin() && caller.ID != id {
		related, err := u.repository.AreRelated(ctx, caller.ID, id)
		if err != nil {
			return nil, fmt.Errorf("check relation: %w", err)
		}
		if !related {
			return nil, ErrUserNotFound
		}
	}

	profile, err := u.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return profile, nil
}

func (u *User) ListUsers(ctx context.Context, caller entities.User, filter entities.UserFilter) ([]entities.User, error) {
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	var visibleTo *uuid.UUID
	if !caller.IsAdmin() {
		visibleTo = &caller.ID
	}

	users, err := u.repository.List(ctx, filter, visibleTo)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser роль и email меняет только администратор.
func (u *User) UpdateUser(ctx context.Context, caller entities.User, id uuid.UUID, modify entities.UserModify) (*entities.User, error) {
	if !caller.IsAdmin() {
		if caller.ID != id {
			return nil, ErrForbidden
		}
		if modify.Role != nil || modify.Email != nil {
			return nil, ErrPrivilegedFields
		}
	}

	if err := validateModify(modify); err != nil {
		return nil, err
	}

	profile, err := u.repository.Update(ctx, id, modify)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	u.cache.Delete(id)
	return profile, nil
}

func (u *User) DeleteUser(ctx context.Context, caller entities.User, id uuid.UUID) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}
	if caller.ID == id {
		return ErrSelfDelete
	}

	if err := u.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	u.cache.Delete(id)
	return nil
}

// AddRelation записывает связь в обе стороны в одной транзакции и возвращает связанного пользователя.
func (u *User) AddRelation(ctx context.Context, caller entities.User, userID, relatedUserID uuid.UUID) (*entities.User, error) {
	if err := checkRelationAccess(caller, userID, relatedUserID); err != nil {
		return nil, err
	}

	var related *entities.User
	err := u.txManager.Do(ctx, func(ctx context.Context) error {
		if err := u.repository.CreateRelation(ctx, userID, relatedUserID); err != nil {
			return fmt.Errorf("create relation: %w", err)
		}

		var err error
		related, err = u.repository.GetByID(ctx, relatedUserID)
		if err != nil {
			return fmt.Errorf("get related user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return related, nil
}

func (u *User) RemoveRelation(ctx context.Context, caller entities.User, userID, relatedUserID uuid.UUID) error {
	if err := checkRelationAccess(caller, userID, relatedUserID); err != nil {
		return err
	}

	return u.txManager.Do(ctx, func(ctx context.Context) error {
		deleted, err := u.repository.DeleteRelation(ctx, userID, relatedUserID)
		if err != nil {
			return fmt.Errorf("delete relation: %w", err)
		}
		if deleted == 0 {
			return ErrRelationNotFound
		}
		return nil
	})
}

func (u *User) ListRelations(ctx context.Context, caller entities.User, userID uuid.UUID) ([]entities.User, error) {
	if !caller.IsAdmin() && caller.ID != userID {
		return nil, ErrForbidden
	}

	related, err := u.repository.ListRelated(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list relations: %w", err)
	}
	return related, nil
}

// PurgeIdentityCache удаляет просроченные записи кэша личностей.
func (u *User) PurgeIdentityCache(_ context.Context) (int, error) {
	return u.cache.Purge(), nil
}

func checkRelationAccess(caller entities.User, userID, relatedUserID uuid.UUID) error {
	if userID == relatedUserID {
		return ErrSelfRelation
	}
	if !caller.IsAdmin() && caller.ID != userID && caller.ID != relatedUserID {
		return ErrRelationNotAllowed
	}
	return nil
}
