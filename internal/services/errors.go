package services

import "errors"

// Sentinel errors returned by the service layer so handlers can map them to
// HTTP statuses.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrNotOwner           = errors.New("caller does not own this product")
)
