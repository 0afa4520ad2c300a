package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternalServer = errors.New("internal server error")
	ErrUnreachable    = errors.New("cannot reach server")
)

// Loan errors
var (
	ErrLoanNotFound      = errors.New("loan not found")
	ErrLoanOverdue       = errors.New("loan overdue, ownership transferred to borrower")
	ErrQuantityExceeded  = errors.New("returned quantity exceeds remaining quantity")
	ErrQuantityTooSmall  = errors.New("quantity must be at least 1")
	ErrCollectorRequired = errors.New("a collector must be selected")
)

// Account errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNotAdmin        = errors.New("account is not an administrator")
)

// Stats errors
var (
	ErrInvalidDateRange = errors.New("invalid date range")
)
