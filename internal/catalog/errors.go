// Package catalog loads, normalizes and searches the remedy and symptom catalogs.
package catalog

import "fmt"

// LoadError represents an error during file I/O, JSON parsing or database reads
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Warning describes a data problem that normalization repaired or tolerated.
type Warning struct {
	RemedyID  string `json:"remedy_id,omitempty"`
	SymptomID string `json:"symptom_id,omitempty"`
	Message   string `json:"message"`
}

func (w Warning) String() string {
	switch {
	case w.RemedyID != "" && w.SymptomID != "":
		return fmt.Sprintf("remedy %s, symptom %s: %s", w.RemedyID, w.SymptomID, w.Message)
	case w.RemedyID != "":
		return fmt.Sprintf("remedy %s: %s", w.RemedyID, w.Message)
	case w.SymptomID != "":
		return fmt.Sprintf("symptom %s: %s", w.SymptomID, w.Message)
	default:
		return w.Message
	}
}
