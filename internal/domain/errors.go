package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrValidation     = errors.New("validation failed")
	ErrUnavailable    = errors.New("unavailable")
	ErrGatewayFailure = errors.New("payment gateway failure")
)
