package models

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrEmailTaken        = errors.New("user with this email already exists")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("status transition not allowed")
	ErrInsufficientFunds = errors.New("insufficient account balance")
	ErrAlreadyProcessed  = errors.New("record already processed")
)
