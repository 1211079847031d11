/*
schema defines the request and response shapes for the retrieval
service API. The types mirror the wire contract; the client performs
no validation of them beyond JSON encoding.
*/
package schema

import (
	// Packages
	uuid "github.com/google/uuid"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Document is a unit of ingestion. Data carries the raw content, either
// as text or as base64-encoded bytes depending on Type.
type Document struct {
	ID       string         `json:"id,omitempty"`
	Type     string         `json:"type,omitempty"`
	Data     string         `json:"data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDocumentID returns a deterministic document ID derived from the
// document content, so re-ingesting the same content yields the same ID.
func NewDocumentID(data string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(data)).String()
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d Document) String() string {
	return types.Stringify(d)
}
