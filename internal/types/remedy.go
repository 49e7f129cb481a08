// Package types provides type definitions for structured data used throughout the bachflower-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Catalog is the dataset the scoring engine runs against: every known remedy
// and every known symptom.
type Catalog struct {
	Remedies []Remedy  `json:"remedies"`
	Symptoms []Symptom `json:"symptoms"`
}

// Remedy represents a single Bach flower essence
type Remedy struct {
	ID          string `json:"id"`
	NameGerman  string `json:"name_german,omitempty"`
	NameEnglish string `json:"name_english,omitempty"`
	NameLatin   string `json:"name_latin,omitempty"`
	Description string `json:"description,omitempty"`
	Affirmation string `json:"affirmation,omitempty"`
	Number      int    `json:"number,omitempty"`
	// SymptomRelations lists the symptoms this remedy is indicated for
	SymptomRelations []SymptomRelation `json:"symptom_relations"`
}

// DisplayName returns the best available human-readable name for the remedy.
func (r Remedy) DisplayName() string {
	switch {
	case r.NameGerman != "":
		return r.NameGerman
	case r.NameEnglish != "":
		return r.NameEnglish
	default:
		return r.ID
	}
}

// SymptomRelation links a remedy to a symptom. Primary relations are main
// indications; secondary ones are supporting.
type SymptomRelation struct {
	SymptomID string `json:"symptom_id"`
	IsPrimary bool   `json:"is_primary"`
}

// Symptom represents a discrete complaint, tagged with exactly one emotion category
type Symptom struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	EmotionCategory string `json:"emotion_category"`
	IndicationType  string `json:"indication_type,omitempty"`
}

// Selection holds the user's chosen emotion categories and symptom ids.
type Selection struct {
	EmotionGroups []string `json:"emotion_groups"`
	Symptoms      []string `json:"symptoms" validate:"dive,required"`
}

// Validate validates the Selection using the validator.
func (s *Selection) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
