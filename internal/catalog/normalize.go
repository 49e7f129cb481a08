package catalog

import (
	"strings"

	"github.com/jonathan/bachflower-advisor/internal/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey trims whitespace and converts the value to Unicode NFC, so that
// precomposed and decomposed umlauts ("Ängste") compare equal.
func NormalizeKey(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

// Normalize returns a cleaned copy of the catalog. Ids and emotion categories
// are NFC-normalized, duplicate symptoms are dropped (first wins) and duplicate
// remedy/symptom relations are collapsed into one, primary winning over
// secondary. The input catalog is not modified.
func Normalize(catalog *types.Catalog) (*types.Catalog, []Warning) {
	var warnings []Warning
	if catalog == nil {
		return &types.Catalog{Remedies: []types.Remedy{}, Symptoms: []types.Symptom{}}, warnings
	}

	symptoms := make([]types.Symptom, 0, len(catalog.Symptoms))
	known := make(map[string]bool, len(catalog.Symptoms))
	for _, s := range catalog.Symptoms {
		s.ID = NormalizeKey(s.ID)
		s.EmotionCategory = NormalizeKey(s.EmotionCategory)

		if s.ID == "" {
			warnings = append(warnings, Warning{Message: "symptom without id dropped"})
			continue
		}
		if known[s.ID] {
			warnings = append(warnings, Warning{SymptomID: s.ID, Message: "duplicate symptom dropped"})
			continue
		}
		if s.EmotionCategory == "" {
			warnings = append(warnings, Warning{SymptomID: s.ID, Message: "symptom has no emotion category"})
		}
		known[s.ID] = true
		symptoms = append(symptoms, s)
	}

	remedies := make([]types.Remedy, 0, len(catalog.Remedies))
	for _, r := range catalog.Remedies {
		r.ID = NormalizeKey(r.ID)
		relations, relWarnings := normalizeRelations(r.ID, r.SymptomRelations, known)
		r.SymptomRelations = relations
		warnings = append(warnings, relWarnings...)
		remedies = append(remedies, r)
	}

	return &types.Catalog{Remedies: remedies, Symptoms: symptoms}, warnings
}

// normalizeRelations collapses duplicate relations of one remedy. The merged
// relation keeps the position of its first occurrence.
func normalizeRelations(remedyID string, relations []types.SymptomRelation, known map[string]bool) ([]types.SymptomRelation, []Warning) {
	var warnings []Warning
	result := make([]types.SymptomRelation, 0, len(relations))
	position := make(map[string]int, len(relations))

	for _, rel := range relations {
		rel.SymptomID = NormalizeKey(rel.SymptomID)
		if rel.SymptomID == "" {
			warnings = append(warnings, Warning{RemedyID: remedyID, Message: "relation without symptom id dropped"})
			continue
		}

		if idx, seen := position[rel.SymptomID]; seen {
			if rel.IsPrimary {
				result[idx].IsPrimary = true
			}
			warnings = append(warnings, Warning{RemedyID: remedyID, SymptomID: rel.SymptomID, Message: "duplicate relation collapsed"})
			continue
		}

		if !known[rel.SymptomID] {
			warnings = append(warnings, Warning{RemedyID: remedyID, SymptomID: rel.SymptomID, Message: "relation references unknown symptom"})
		}
		position[rel.SymptomID] = len(result)
		result = append(result, rel)
	}

	return result, warnings
}

// NormalizeSelection returns a copy of the selection with NFC-normalized,
// trimmed and de-duplicated values. Blank entries are dropped; order is kept.
func NormalizeSelection(selection *types.Selection) *types.Selection {
	if selection == nil {
		return &types.Selection{EmotionGroups: []string{}, Symptoms: []string{}}
	}
	return &types.Selection{
		EmotionGroups: normalizeList(selection.EmotionGroups),
		Symptoms:      normalizeList(selection.Symptoms),
	}
}

func normalizeList(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		key := NormalizeKey(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, key)
	}
	return result
}

// EmotionCategories returns the distinct emotion categories of the symptoms,
// sorted using German collation rules.
func EmotionCategories(symptoms []types.Symptom) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, s := range symptoms {
		category := NormalizeKey(s.EmotionCategory)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}

	SortCategories(categories)
	return categories
}

// SortCategories sorts category names in place using German collation rules.
func SortCategories(names []string) {
	collate.New(language.German).SortStrings(names)
}
