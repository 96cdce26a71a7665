package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Car errors
	ErrCarNotFound      = errors.New("car not found")
	ErrCarLoadFailed    = errors.New("car failed to load")
	ErrInvalidCarRecord = errors.New("invalid car record")

	// Booking errors
	ErrCarNotBookable   = errors.New("car is not bookable")
	ErrIncompleteRange  = errors.New("date range is incomplete")
	ErrLocationNotFound = errors.New("location not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
