package appointments

import "github.com/google/uuid"

// Status is the appointment lifecycle state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Kind distinguishes online bookings from walk-ins.
type Kind string

const (
	KindOnline Kind = "Online"
	KindWalkIn Kind = "Walk-in"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindOnline || k == KindWalkIn
}

// Appointment is a booked slot. The patient name is free text so the
// front desk can book people who are not registered yet; PatientID is an
// advisory link that is never required to resolve.
type Appointment struct {
	ID          uuid.UUID  `json:"id"`
	PatientName string     `json:"patientName"`
	PatientID   *uuid.UUID `json:"patientId,omitempty"`
	Mobile      string     `json:"mobile"`
	Date        string     `json:"date"` // plain calendar date, YYYY-MM-DD
	Time        string     `json:"time"` // "10:30"
	Status      Status     `json:"status"`
	Kind        Kind       `json:"type"`
	Notes       string     `json:"notes,omitempty"`
}

// Row is the storage shape of an appointment.
type Row struct {
	ID          uuid.UUID  `json:"id"`
	PatientName string     `json:"patient_name"`
	PatientID   *uuid.UUID `json:"patient_id"`
	Mobile      string     `json:"mobile"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      string     `json:"status"`
	Kind        string     `json:"type"`
	Notes       *string    `json:"notes"`
}

// ToDomain maps a row to the domain shape.
func (r Row) ToDomain() Appointment {
	a := Appointment{
		ID:          r.ID,
		PatientName: r.PatientName,
		PatientID:   r.PatientID,
		Mobile:      r.Mobile,
		Date:        r.Date,
		Time:        r.Time,
		Status:      Status(r.Status),
		Kind:        Kind(r.Kind),
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
	return a
}

// ToRow maps an appointment to its storage shape.
func (a Appointment) ToRow() Row {
	r := Row{
		ID:          a.ID,
		PatientName: a.PatientName,
		PatientID:   a.PatientID,
		Mobile:      a.Mobile,
		Date:        a.Date,
		Time:        a.Time,
		Status:      string(a.Status),
		Kind:        string(a.Kind),
	}
	if a.Notes != "" {
		r.Notes = &a.Notes
	}
	return r
}

// Normalize fills the defaults a booking form may omit: new appointments
// start Pending and are walk-ins unless marked otherwise.
func (a *Appointment) Normalize() {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Kind == "" {
		a.Kind = KindWalkIn
	}
}

// Validate checks mandatory fields and enum membership. Normalize should
// run first so defaulted fields pass.
func (a Appointment) Validate() error {
	if a.PatientName == "" {
		return ErrNameRequired
	}
	if a.Mobile == "" {
		return ErrMobileRequired
	}
	if a.Date == "" {
		return ErrDateRequired
	}
	if a.Time == "" {
		return ErrTimeRequired
	}
	if !a.Status.Valid() {
		return ErrInvalidStatus
	}
	if !a.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}
