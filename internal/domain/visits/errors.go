package visits

import "errors"

var (
	// ErrNotFound signals an unknown visit id.
	ErrNotFound = errors.New("visit not found")
	// ErrPatientRequired signals a create without a patient reference.
	ErrPatientRequired = errors.New("patientId is required")
	// ErrPatientNotFound signals a create referencing an unknown patient.
	ErrPatientNotFound = errors.New("referenced patient does not exist")
	// ErrDateRequired signals a create without a visit date.
	ErrDateRequired = errors.New("date is required")
	// ErrNegativeFees signals a negative fee amount.
	ErrNegativeFees = errors.New("fees must not be negative")
)
