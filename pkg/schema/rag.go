package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// GenerationConfig carries the generation parameters for a RAG request.
// Stream selects the streaming transport branch.
type GenerationConfig struct {
	Model             string   `json:"model,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	TopP              *float64 `json:"top_p,omitempty"`
	TopK              *uint    `json:"top_k,omitempty"`
	MaxTokensToSample *uint    `json:"max_tokens_to_sample,omitempty"`
	Stream            bool     `json:"stream,omitempty"`
	StopSequences     []string `json:"stop_sequences,omitempty"`
}

// RAGRequest represents a retrieval-augmented generation request
type RAGRequest struct {
	Query                   string               `json:"query"`
	VectorSearchSettings    VectorSearchSettings `json:"vector_search_settings"`
	KGSearchSettings        KGSearchSettings     `json:"kg_search_settings"`
	RAGGenerationConfig     *GenerationConfig    `json:"rag_generation_config,omitempty"`
	TaskPromptOverride      string               `json:"task_prompt_override,omitempty"`
	IncludeTitleIfAvailable bool                 `json:"include_title_if_available,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Streaming returns true when the generation config selects the
// streaming transport branch.
func (r RAGRequest) Streaming() bool {
	return r.RAGGenerationConfig != nil && r.RAGGenerationConfig.Stream
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r RAGRequest) String() string {
	return types.Stringify(r)
}

func (c GenerationConfig) String() string {
	return types.Stringify(c)
}
