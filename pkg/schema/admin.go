package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is the decoded JSON body returned by the service. The client
// does not interpret or validate its shape.
type Response map[string]any

// UpdatePromptRequest represents a request to update a named prompt
// template on the service
type UpdatePromptRequest struct {
	Name       string         `json:"name"`
	Template   string         `json:"template,omitempty"`
	InputTypes map[string]any `json:"input_types,omitempty"`
}

// DeleteRequest identifies entries to remove, as parallel key and value
// arrays. The arrays are forwarded as given; no length check is applied.
type DeleteRequest struct {
	Keys   []string `json:"keys"`
	Values []string `json:"values"`
}

// LogsRequest represents a request for run logs. LogTypeFilter is
// marshalled as an explicit null when unset, which the service treats
// as "no filter".
type LogsRequest struct {
	LogTypeFilter    *string `json:"log_type_filter"`
	MaxRunsRequested int     `json:"max_runs_requested"`
}

// AnalyticsRequest represents a request for aggregate analytics
type AnalyticsRequest struct {
	FilterCriteria map[string]any `json:"filter_criteria"`
	AnalysisTypes  map[string]any `json:"analysis_types"`
}

// DocumentsOverviewRequest represents a request for document listings,
// optionally filtered by document or user IDs
type DocumentsOverviewRequest struct {
	DocumentIDs []string `json:"document_ids,omitempty"`
	UserIDs     []string `json:"user_ids,omitempty"`
}

// DocumentChunksRequest represents a request for the stored chunks of a
// single document
type DocumentChunksRequest struct {
	DocumentID string `json:"document_id"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r UpdatePromptRequest) String() string {
	return types.Stringify(r)
}

func (r DeleteRequest) String() string {
	return types.Stringify(r)
}

func (r LogsRequest) String() string {
	return types.Stringify(r)
}

func (r AnalyticsRequest) String() string {
	return types.Stringify(r)
}

func (r DocumentsOverviewRequest) String() string {
	return types.Stringify(r)
}

func (r DocumentChunksRequest) String() string {
	return types.Stringify(r)
}
