package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// VectorSearchSettings control the vector search stage of a search or
// RAG request
type VectorSearchSettings struct {
	UseVectorSearch bool           `json:"use_vector_search"`
	SearchFilters   map[string]any `json:"search_filters,omitempty"`
	SearchLimit     uint           `json:"search_limit,omitempty"`
	DoHybridSearch  bool           `json:"do_hybrid_search,omitempty"`
}

// KGSearchSettings control the knowledge-graph search stage of a search
// or RAG request
type KGSearchSettings struct {
	UseKGSearch           bool              `json:"use_kg_search"`
	AgentGenerationConfig *GenerationConfig `json:"kg_agent_generation_config,omitempty"`
}

// SearchRequest represents a vector/hybrid search request
type SearchRequest struct {
	Query                string               `json:"query"`
	VectorSearchSettings VectorSearchSettings `json:"vector_search_settings"`
	KGSearchSettings     KGSearchSettings     `json:"kg_search_settings"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultSearchLimit = 10
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultVectorSearchSettings returns vector search settings with vector
// search enabled and the default result limit.
func DefaultVectorSearchSettings() VectorSearchSettings {
	return VectorSearchSettings{
		UseVectorSearch: true,
		SearchLimit:     defaultSearchLimit,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r SearchRequest) String() string {
	return types.Stringify(r)
}
