package visits

import (
	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
)

// PrescriptionItem is one line of a visit's prescription. It is a value
// type carried inside the visit, never addressed on its own.
type PrescriptionItem struct {
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Duration     string `json:"duration"`
	Instruction  string `json:"instruction"`
}

// Visit is one consultation record. Visits are append-only: once written
// they are never updated or deleted individually, only removed wholesale
// when their patient is deleted.
type Visit struct {
	ID           uuid.UUID          `json:"id"`
	PatientID    uuid.UUID          `json:"patientId"`
	Date         string             `json:"date"` // plain calendar date, YYYY-MM-DD
	Symptoms     string             `json:"symptoms"`
	Diagnosis    string             `json:"diagnosis"`
	Prescription []PrescriptionItem `json:"prescription"`
	Notes        string             `json:"notes"`
	Fees         codec.Number       `json:"fees"`
	NextFollowUp string             `json:"nextFollowUp,omitempty"`
}

// Row is the storage shape of a visit.
type Row struct {
	ID           uuid.UUID          `json:"id"`
	PatientID    uuid.UUID          `json:"patient_id"`
	Date         string             `json:"date"`
	Symptoms     string             `json:"symptoms"`
	Diagnosis    string             `json:"diagnosis"`
	Prescription []PrescriptionItem `json:"prescription"`
	Notes        string             `json:"notes"`
	Fees         codec.Number       `json:"fees"`
	NextFollowUp *string            `json:"next_follow_up"`
}

// ToDomain maps a row to the domain shape. A missing prescription becomes
// an empty list and a missing follow-up an empty string, never a nil that
// callers would have to guard against.
func (r Row) ToDomain() Visit {
	v := Visit{
		ID:           r.ID,
		PatientID:    r.PatientID,
		Date:         r.Date,
		Symptoms:     r.Symptoms,
		Diagnosis:    r.Diagnosis,
		Prescription: r.Prescription,
		Notes:        r.Notes,
		Fees:         r.Fees,
	}
	if v.Prescription == nil {
		v.Prescription = []PrescriptionItem{}
	}
	if r.NextFollowUp != nil {
		v.NextFollowUp = *r.NextFollowUp
	}
	return v
}

// ToRow maps a visit to its storage shape.
func (v Visit) ToRow() Row {
	r := Row{
		ID:           v.ID,
		PatientID:    v.PatientID,
		Date:         v.Date,
		Symptoms:     v.Symptoms,
		Diagnosis:    v.Diagnosis,
		Prescription: v.Prescription,
		Notes:        v.Notes,
		Fees:         v.Fees,
	}
	if v.NextFollowUp != "" {
		r.NextFollowUp = &v.NextFollowUp
	}
	return r
}

// CreateVisit is the payload for recording a consultation.
type CreateVisit struct {
	PatientID    uuid.UUID          `json:"patientId"`
	Date         string             `json:"date"`
	Symptoms     string             `json:"symptoms"`
	Diagnosis    string             `json:"diagnosis"`
	Prescription []PrescriptionItem `json:"prescription"`
	Notes        string             `json:"notes"`
	Fees         codec.Number       `json:"fees"`
	NextFollowUp string             `json:"nextFollowUp"`
}

// Validate checks the mandatory fields.
func (c CreateVisit) Validate() error {
	if c.PatientID == uuid.Nil {
		return ErrPatientRequired
	}
	if c.Date == "" {
		return ErrDateRequired
	}
	if c.Fees < 0 {
		return ErrNegativeFees
	}
	return nil
}
