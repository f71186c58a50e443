package user

import "freight/pkg/apperr"

var (
	ErrMissingRequiredFields = apperr.New(apperr.KindValidation, "missing required fields")
	ErrNoFieldsToUpdate      = apperr.New(apperr.KindValidation, "no fields to update")
	ErrInvalidName           = apperr.New(apperr.KindValidation, "name must not be empty")
	ErrInvalidEmail          = apperr.New(apperr.KindValidation, "email is not a valid address")
	ErrInvalidRole           = apperr.New(apperr.KindValidation, "role is not one of Admin, Shipper, Receiver, ForwardingAgent")
	ErrSelfRelation          = apperr.New(apperr.KindValidation, "a user cannot be related to themselves")
	ErrSelfDelete            = apperr.New(apperr.KindValidation, "an administrator cannot delete their own profile")

	ErrForbidden          = apperr.New(apperr.KindScope, "not allowed to modify this user")
	ErrPrivilegedFields   = apperr.New(apperr.KindScope, "only an administrator can change role or email")
	ErrAdminOnly          = apperr.New(apperr.KindScope, "only an administrator can perform this action")
	ErrRelationNotAllowed = apperr.New(apperr.KindScope, "only a participant or an administrator can manage this relation")

	ErrUserNotFound     = apperr.New(apperr.KindNotFound, "user not found")
	ErrRelationNotFound = apperr.New(apperr.KindNotFound, "relation not found")

	ErrUserExists      = apperr.New(apperr.KindConflict, "user already exists")
	ErrEmailTaken      = apperr.New(apperr.KindConflict, "email is already registered to another user")
	ErrUserReferenced  = apperr.New(apperr.KindConflict, "user is referenced by orders and cannot be deleted")
	ErrRelationExists  = apperr.New(apperr.KindConflict, "relation already exists")
	ErrUserReference   = apperr.New(apperr.KindReference, "related user does not exist")
	ErrInvalidIdentity = apperr.New(apperr.KindUnauthenticated, "identity has no subject")
)
