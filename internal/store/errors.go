package store

import (
	"errors"
)

// Sentinel errors the handlers map onto HTTP statuses. Forbidden is a hard
// stop (bare 403); the rest surface as user-visible notices.
var (
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactiveAccount    = errors.New("account is deactivated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrOutOfStock         = errors.New("product out of stock")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrInvalidStatus      = errors.New("unknown order status")
)
