package ledger

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrWithdrawalLimit    = errors.New("withdrawal limit exceeded")
	ErrUnknownKind        = errors.New("unknown account kind")
	ErrUnrecognizedLegacy = errors.New("unrecognized legacy transaction format")
)
