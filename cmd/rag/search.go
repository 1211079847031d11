package main

import (
	"context"

	// Packages
	httpclient "github.com/ragware/go-rag/pkg/httpclient"
	schema "github.com/ragware/go-rag/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SearchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Limit  uint   `help:"Maximum number of results"`
	Hybrid bool   `help:"Use hybrid search"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SearchCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		settings := schema.DefaultVectorSearchSettings()
		if cmd.Limit > 0 {
			settings.SearchLimit = cmd.Limit
		}
		settings.DoHybridSearch = cmd.Hybrid

		response, err := c.Search(ctx, schema.SearchRequest{
			Query:                cmd.Query,
			VectorSearchSettings: settings,
		})
		if err != nil {
			return err
		}
		return print(response)
	})
}
