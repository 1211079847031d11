package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	rag "github.com/ragware/go-rag"
	schema "github.com/ragware/go-rag/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Shared form field name for all file parts in an upload
	fileField = "files"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// upload sends a multipart form request with the given file parts, in
// order, and the populated fields of the request record as
// JSON-stringified form values. It uses the underlying *http.Client
// directly so the multipart writer owns the boundary in the
// Content-Type header.
func (c *Client) upload(ctx context.Context, path string, files []schema.File, fields any) (schema.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// File parts, preserving input order
	for _, f := range files {
		part, err := w.CreateFormFile(fileField, f.Filename)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return nil, err
		}
	}

	// Remaining fields as JSON-stringified form values, so structured
	// values survive multipart's flat string encoding
	values, err := formFields(fields)
	if err != nil {
		return nil, err
	}
	for name, value := range values {
		if err := w.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", client.ContentTypeJson)

	resp, err := c.Client.Client.Do(req)
	if err != nil {
		log.Printf("upload %s: %v", path, err)
		return nil, rag.ErrTransport.With(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("upload %s: %s %q headers=%v", path, resp.Status, body, resp.Header)
		return nil, rag.ErrServer.Withf("%s: %s", resp.Status, body)
	}

	var response schema.Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, rag.ErrTransport.With(err)
	}
	return response, nil
}

// formFields marshals the request record to JSON and returns each
// top-level field as a JSON-stringified form value, keyed by its wire
// name. Fields elided by omitempty are not included.
func formFields(v any) (map[string]string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	result := make(map[string]string, len(fields))
	for name, value := range fields {
		result[name] = string(value)
	}
	return result, nil
}
