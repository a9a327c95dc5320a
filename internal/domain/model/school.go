package model

// UniformSet lists a school's uniform catalog as "{type} {variant}"
// strings per gender and category.
type UniformSet map[Gender]map[Category][]string

// SchoolContact holds a school's public contact details.
type SchoolContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// School is append-only reference data describing a partner school.
type School struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Location            string             `json:"location"`
	Image               string             `json:"image,omitempty"`
	Students            string             `json:"students,omitempty"`
	Established         int                `json:"established,omitempty"`
	Uniforms            UniformSet         `json:"uniforms"`
	UniformPrice        map[Gender]float64 `json:"uniformPrice,omitempty"`
	Description         string             `json:"description,omitempty"`
	Rating              float64            `json:"rating,omitempty"`
	Reviews             int                `json:"reviews"`
	Accreditation       string             `json:"accreditation,omitempty"`
	Facilities          []string           `json:"facilities,omitempty"`
	Timings             string             `json:"timings,omitempty"`
	Contact             SchoolContact      `json:"contact"`
	AdmissionOpen       bool               `json:"admissionOpen"`
	UniformAvailability string             `json:"uniformAvailability,omitempty"`
}
