package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Species is a catalog row. ID is assigned by the store and never chosen here.
type Species struct {
	ID              int64     `json:"id"`
	Author          uuid.UUID `json:"author"`
	ScientificName  string    `json:"scientific_name"`
	CommonName      *string   `json:"common_name"`
	Kingdom         Kingdom   `json:"kingdom"`
	TotalPopulation *int64    `json:"total_population"`
	Image           *string   `json:"image"`
	Description     *string   `json:"description"`
}

// SpeciesInput is the full editable field set. Create and Update both send
// every field; there is no partial patch.
type SpeciesInput struct {
	ScientificName  string  `json:"scientific_name"`
	CommonName      *string `json:"common_name"`
	Kingdom         Kingdom `json:"kingdom"`
	TotalPopulation *int64  `json:"total_population"`
	Image           *string `json:"image"`
	Description     *string `json:"description"`
}

// Input returns the editable fields of s.
func (s Species) Input() SpeciesInput {
	return SpeciesInput{
		ScientificName:  s.ScientificName,
		CommonName:      s.CommonName,
		Kingdom:         s.Kingdom,
		TotalPopulation: s.TotalPopulation,
		Image:           s.Image,
		Description:     s.Description,
	}
}

// Apply replaces every editable field of s with in.
func (s Species) Apply(in SpeciesInput) Species {
	s.ScientificName = in.ScientificName
	s.CommonName = in.CommonName
	s.Kingdom = in.Kingdom
	s.TotalPopulation = in.TotalPopulation
	s.Image = in.Image
	s.Description = in.Description
	return s
}

// Validate checks the record-level invariants of an input. Field-level
// messages for forms live in the schema package.
func (in SpeciesInput) Validate() error {
	if strings.TrimSpace(in.ScientificName) == "" {
		return invalidRecordError("scientific name is required")
	}
	if err := in.Kingdom.Validate(); err != nil {
		return err
	}
	if in.TotalPopulation != nil && *in.TotalPopulation < 1 {
		return invalidRecordError("total population must be at least 1")
	}
	return nil
}

// DisplayName prefers the common name and falls back to the scientific name.
func (s Species) DisplayName() string {
	if s.CommonName != nil && strings.TrimSpace(*s.CommonName) != "" {
		return *s.CommonName
	}
	return s.ScientificName
}
