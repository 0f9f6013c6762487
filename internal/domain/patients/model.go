package patients

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
)

// Gender is the patient's recorded gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the known values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient is the registry entry for one person.
type Patient struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Mobile            string    `json:"mobile"`
	Age               codec.Int `json:"age"`
	Gender            Gender    `json:"gender"`
	BloodGroup        string    `json:"bloodGroup,omitempty"`
	Address           string    `json:"address"`
	Allergies         string    `json:"allergies,omitempty"`
	ChronicConditions string    `json:"chronicConditions,omitempty"`
	RegisteredDate    time.Time `json:"registeredDate"`
}

// Row is the backend row shape for a patient: snake_case names, nullable
// optional columns.
type Row struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Mobile            string    `json:"mobile"`
	Age               codec.Int `json:"age"`
	Gender            string    `json:"gender"`
	BloodGroup        *string   `json:"blood_group"`
	Address           *string   `json:"address"`
	Allergies         *string   `json:"allergies"`
	ChronicConditions *string   `json:"chronic_conditions"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToDomain converts a backend row to the domain shape. Missing optional
// columns become empty strings; it never fails.
func (r Row) ToDomain() Patient {
	return Patient{
		ID:                r.ID,
		Name:              r.Name,
		Mobile:            r.Mobile,
		Age:               r.Age,
		Gender:            Gender(r.Gender),
		BloodGroup:        strVal(r.BloodGroup),
		Address:           strVal(r.Address),
		Allergies:         strVal(r.Allergies),
		ChronicConditions: strVal(r.ChronicConditions),
		RegisteredDate:    r.CreatedAt,
	}
}

// ToRow converts the domain shape back to the backend row shape. Unset
// optional fields map to NULL rather than empty strings.
func (p Patient) ToRow() Row {
	return Row{
		ID:                p.ID,
		Name:              p.Name,
		Mobile:            p.Mobile,
		Age:               p.Age,
		Gender:            string(p.Gender),
		BloodGroup:        strPtr(p.BloodGroup),
		Address:           strPtr(p.Address),
		Allergies:         strPtr(p.Allergies),
		ChronicConditions: strPtr(p.ChronicConditions),
		CreatedAt:         p.RegisteredDate,
	}
}

// CreatePatient carries the fields mandatory (and optional) for
// registration. The id and registration timestamp are assigned by the
// repository.
type CreatePatient struct {
	Name              string    `json:"name"`
	Mobile            string    `json:"mobile"`
	Age               codec.Int `json:"age"`
	Gender            Gender    `json:"gender"`
	BloodGroup        string    `json:"bloodGroup"`
	Address           string    `json:"address"`
	Allergies         string    `json:"allergies"`
	ChronicConditions string    `json:"chronicConditions"`
}

// Validate checks the mandatory registration fields.
func (c CreatePatient) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if c.Mobile == "" {
		return ErrMobileRequired
	}
	if !c.Gender.Valid() {
		return ErrInvalidGender
	}
	if c.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// Patch lists exactly which fields a partial update may change. Nil
// fields are left untouched.
type Patch struct {
	Name              *string    `json:"name"`
	Mobile            *string    `json:"mobile"`
	Age               *codec.Int `json:"age"`
	Gender            *Gender    `json:"gender"`
	BloodGroup        *string    `json:"bloodGroup"`
	Address           *string    `json:"address"`
	Allergies         *string    `json:"allergies"`
	ChronicConditions *string    `json:"chronicConditions"`
}

// Validate rejects values that would corrupt the record.
func (p Patch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Mobile != nil && *p.Mobile == "" {
		return ErrMobileRequired
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return ErrInvalidGender
	}
	if p.Age != nil && *p.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// apply copies the patch's set fields onto a patient.
func (p Patch) apply(dst *Patient) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Mobile != nil {
		dst.Mobile = *p.Mobile
	}
	if p.Age != nil {
		dst.Age = *p.Age
	}
	if p.Gender != nil {
		dst.Gender = *p.Gender
	}
	if p.BloodGroup != nil {
		dst.BloodGroup = *p.BloodGroup
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.Allergies != nil {
		dst.Allergies = *p.Allergies
	}
	if p.ChronicConditions != nil {
		dst.ChronicConditions = *p.ChronicConditions
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
