package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/jonathan/bachflower-advisor/internal/types"
)

const (
	// defaultMaxResults is the number of search hits returned when no limit is set
	defaultMaxResults = 5
	// maxDescriptionDistance bounds the name distance for description-only hits
	maxDescriptionDistance = 3
)

// SearchOptions controls symptom search
type SearchOptions struct {
	// Exclude lists symptom names that must not be returned (e.g. already selected)
	Exclude []string
	// Max caps the number of results; zero means defaultMaxResults
	Max int
}

type searchHit struct {
	symptom  types.Symptom
	name     string
	distance int
}

// SearchSymptoms finds symptoms whose name matches the term exactly, by prefix
// or by substring, or whose description contains the term while the name is
// within a small edit distance. Exact matches come first, then prefix matches,
// then everything else by edit distance.
func SearchSymptoms(symptoms []types.Symptom, term string, opts SearchOptions) []types.Symptom {
	search := strings.ToLower(NormalizeKey(term))
	if search == "" {
		return []types.Symptom{}
	}

	limit := opts.Max
	if limit <= 0 {
		limit = defaultMaxResults
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[NormalizeKey(name)] = true
	}

	hits := make([]searchHit, 0)
	for _, s := range symptoms {
		if excluded[NormalizeKey(s.Name)] {
			continue
		}

		name := strings.ToLower(NormalizeKey(s.Name))
		description := strings.ToLower(NormalizeKey(s.Description))
		distance := levenshtein.ComputeDistance(search, name)

		matched := name == search ||
			strings.HasPrefix(name, search) ||
			strings.Contains(name, search) ||
			(strings.Contains(description, search) && distance <= maxDescriptionDistance)
		if !matched {
			continue
		}

		hits = append(hits, searchHit{symptom: s, name: name, distance: distance})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		aExact, bExact := a.name == search, b.name == search
		if aExact != bExact {
			return aExact
		}
		aPrefix, bPrefix := strings.HasPrefix(a.name, search), strings.HasPrefix(b.name, search)
		if aPrefix != bPrefix {
			return aPrefix
		}
		return a.distance < b.distance
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	result := make([]types.Symptom, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.symptom)
	}
	return result
}
