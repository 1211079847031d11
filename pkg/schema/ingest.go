package schema

import (
	"io"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// IngestDocumentsRequest represents a request to ingest documents inline
type IngestDocumentsRequest struct {
	Documents []Document `json:"documents"`
	Versions  []string   `json:"versions,omitempty"`
}

// UpdateDocumentsRequest represents a request to update previously
// ingested documents
type UpdateDocumentsRequest struct {
	Documents []Document       `json:"documents"`
	Versions  []string         `json:"versions,omitempty"`
	Metadatas []map[string]any `json:"metadatas,omitempty"`
}

// File is a named binary attachment for an upload request. Body is read
// once when the multipart form is encoded.
type File struct {
	Filename string
	Body     io.Reader
}

// IngestFilesRequest carries the form fields sent alongside file parts
// in an ingest upload. Field order and counts are not validated
// client-side; the server enforces positional correspondence.
type IngestFilesRequest struct {
	Metadatas        []map[string]any `json:"metadatas,omitempty"`
	DocumentIDs      []string         `json:"document_ids,omitempty"`
	UserIDs          []*string        `json:"user_ids,omitempty"`
	Versions         []string         `json:"versions,omitempty"`
	SkipDocumentInfo *bool            `json:"skip_document_info,omitempty"`
}

// UpdateFilesRequest carries the form fields sent alongside file parts
// in an update upload
type UpdateFilesRequest struct {
	DocumentIDs []string         `json:"document_ids"`
	Metadatas   []map[string]any `json:"metadatas,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r IngestDocumentsRequest) String() string {
	return types.Stringify(r)
}

func (r UpdateDocumentsRequest) String() string {
	return types.Stringify(r)
}

func (r IngestFilesRequest) String() string {
	return types.Stringify(r)
}

func (r UpdateFilesRequest) String() string {
	return types.Stringify(r)
}
