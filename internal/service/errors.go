package service

import "errors"

var (
	ErrValidation         = errors.New("validation")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrNotAdmin           = errors.New("admin access required")
	ErrProductNotFound    = errors.New("product not found")
)
