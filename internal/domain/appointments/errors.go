package appointments

import "errors"

var (
	// ErrNotFound signals an unknown appointment id.
	ErrNotFound = errors.New("appointment not found")
	// ErrNameRequired signals a booking without a patient name.
	ErrNameRequired = errors.New("patientName is required")
	// ErrMobileRequired signals a booking without a mobile number.
	ErrMobileRequired = errors.New("mobile is required")
	// ErrDateRequired signals a booking without a date.
	ErrDateRequired = errors.New("date is required")
	// ErrTimeRequired signals a booking without a time.
	ErrTimeRequired = errors.New("time is required")
	// ErrInvalidStatus signals a value outside the status enum.
	ErrInvalidStatus = errors.New("invalid appointment status")
	// ErrInvalidKind signals a value outside the Online/Walk-in enum.
	ErrInvalidKind = errors.New("invalid appointment type")
)
