package service

import "errors"

var (
	ErrValidation         = errors.New("validation")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrAlreadyCancelled   = errors.New("order already cancelled")
)
