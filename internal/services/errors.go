// internal/services/errors.go
package services

import "errors"

// Sentinel errors for the handler boundary. Handlers map these to the HTTP
// taxonomy: NotFound, Conflict, Unauthorized, Validation.
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyInWishlist  = errors.New("product already in wishlist")
	ErrNotInWishlist      = errors.New("product not found in wishlist")
	ErrAlertNotFound      = errors.New("price alert not found")
)
