package store

import "errors"

// Sentinel errors returned by repositories. Match with errors.Is.
var (
	// ErrEmailAlreadyExists is returned when signing up with an e-mail that is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no account matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrItemNotFound is returned when a vault record does not exist for the
	// requesting user.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemNotSaved is returned when an INSERT affects no rows.
	ErrItemNotSaved = errors.New("vault item was not saved")

	// ErrUnsupportedDriver is returned for an unknown STORAGE_DB_DRIVER.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level failures, wrapped around the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
