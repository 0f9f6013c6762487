package patients

import "errors"

var (
	// ErrNotFound is returned when no patient has the given id.
	ErrNotFound = errors.New("patient not found")

	// ErrNameRequired is returned when the name is missing.
	ErrNameRequired = errors.New("name is required")

	// ErrMobileRequired is returned when the mobile number is missing.
	ErrMobileRequired = errors.New("mobile is required")

	// ErrInvalidGender is returned for a gender outside the known values.
	ErrInvalidGender = errors.New("gender must be Male, Female, or Other")

	// ErrInvalidAge is returned for a negative age.
	ErrInvalidAge = errors.New("age must not be negative")
)
