package bank

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrDuplicateEmail  = errors.New("an account with this email already exists")
	ErrEmptyField      = errors.New("name and email cannot be empty")
	ErrNegativeBalance = errors.New("initial balance cannot be negative")
	ErrAccountNotFound = errors.New("account not found")
)
