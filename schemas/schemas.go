// Package schemas embeds the JSON Schemas for every artifact the CLI reads or writes.
package schemas

import "embed"

// Schema file names
const (
	Catalog           = "catalog.schema.json"
	Selection         = "selection.schema.json"
	SuggestionResult  = "suggestion_result.schema.json"
	RankedSuggestions = "ranked_suggestions.schema.json"
	Scenarios         = "scenarios.schema.json"
	ParameterSets     = "parameter_sets.schema.json"
	EvaluationReport  = "evaluation_report.schema.json"
)

// Files holds the embedded schema documents
//
//go:embed *.schema.json
var Files embed.FS
