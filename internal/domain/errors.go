package domain

import "errors"

var (
	// Date errors
	ErrInvalidDate = errors.New("invalid date")

	// Amount errors
	ErrAmountNotFinite = errors.New("amount is not a finite number")
)
