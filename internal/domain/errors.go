package domain

import "errors"

// Sentinel errors returned by stores and services. Handlers translate these
// into transport-level responses.
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so responses never reveal which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")

	// Duplicate-key rejections surfaced by the account store when a unique
	// constraint fires. The session service maps them to the field-specific
	// taken errors above.
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateEmail    = errors.New("duplicate email")

	ErrAccountNotFound = errors.New("account not found")
	ErrDishNotFound    = errors.New("dish not found")
	ErrDishUnavailable = errors.New("dish not available")
	ErrCartNotFound    = errors.New("cart not found")
	ErrEmptyCart       = errors.New("cart is empty")
)
