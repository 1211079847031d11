package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/ragware/go-rag/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNewDocumentID(t *testing.T) {
	assert := assert.New(t)

	// Deterministic: same content, same ID
	a := schema.NewDocumentID("the quick brown fox")
	b := schema.NewDocumentID("the quick brown fox")
	assert.Equal(a, b)
	assert.NotEmpty(a)

	// Different content, different ID
	c := schema.NewDocumentID("jumps over the lazy dog")
	assert.NotEqual(a, c)
}

func TestLogsRequest_Marshal(t *testing.T) {
	assert := assert.New(t)

	// An unset filter marshals as an explicit null, distinguishing
	// "unset" from an empty filter string
	data, err := json.Marshal(schema.LogsRequest{MaxRunsRequested: 100})
	assert.NoError(err)
	assert.JSONEq(`{"log_type_filter": null, "max_runs_requested": 100}`, string(data))

	filter := "search"
	data, err = json.Marshal(schema.LogsRequest{LogTypeFilter: &filter, MaxRunsRequested: 5})
	assert.NoError(err)
	assert.JSONEq(`{"log_type_filter": "search", "max_runs_requested": 5}`, string(data))
}

func TestDefaultVectorSearchSettings(t *testing.T) {
	assert := assert.New(t)
	settings := schema.DefaultVectorSearchSettings()
	assert.True(settings.UseVectorSearch)
	assert.Equal(uint(10), settings.SearchLimit)
	assert.False(settings.DoHybridSearch)
}

func TestRAGRequest_Streaming(t *testing.T) {
	assert := assert.New(t)

	assert.False(schema.RAGRequest{}.Streaming())
	assert.False(schema.RAGRequest{
		RAGGenerationConfig: &schema.GenerationConfig{},
	}.Streaming())
	assert.True(schema.RAGRequest{
		RAGGenerationConfig: &schema.GenerationConfig{Stream: true},
	}.Streaming())
}

func TestDeleteRequest_Marshal(t *testing.T) {
	assert := assert.New(t)

	// Parallel arrays are forwarded as given, without length checks
	data, err := json.Marshal(schema.DeleteRequest{
		Keys:   []string{"document_id"},
		Values: []string{"doc-1", "doc-2"},
	})
	assert.NoError(err)
	assert.JSONEq(`{"keys": ["document_id"], "values": ["doc-1", "doc-2"]}`, string(data))
}

func TestGenerationConfig_Marshal(t *testing.T) {
	assert := assert.New(t)

	// A zero config marshals to an empty object; the stream flag only
	// appears when set
	data, err := json.Marshal(schema.GenerationConfig{})
	assert.NoError(err)
	assert.JSONEq(`{}`, string(data))

	data, err = json.Marshal(schema.GenerationConfig{Stream: true})
	assert.NoError(err)
	assert.JSONEq(`{"stream": true}`, string(data))
}
