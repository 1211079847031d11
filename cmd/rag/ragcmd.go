package main

import (
	"context"
	"fmt"
	"os"

	// Packages
	httpclient "github.com/ragware/go-rag/pkg/httpclient"
	schema "github.com/ragware/go-rag/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type RagCmd struct {
	Query       string   `arg:"" help:"Question to answer"`
	Model       string   `help:"Generation model"`
	Temperature *float64 `help:"Generation temperature"`
	Stream      bool     `help:"Stream the response"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *RagCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		request := schema.RAGRequest{
			Query:                cmd.Query,
			VectorSearchSettings: schema.DefaultVectorSearchSettings(),
			RAGGenerationConfig: &schema.GenerationConfig{
				Model:       cmd.Model,
				Temperature: cmd.Temperature,
				Stream:      cmd.Stream,
			},
		}

		// Buffered branch
		if !cmd.Stream {
			response, err := c.RAG(ctx, request)
			if err != nil {
				return err
			}
			return print(response)
		}

		// Streaming branch: write raw chunks through as they arrive
		stream, err := c.RAGStream(ctx, request)
		if err != nil {
			return err
		}
		defer stream.Close()

		for chunk := range stream.Chunks() {
			os.Stdout.Write(chunk)
		}
		fmt.Println()
		return stream.Err()
	})
}
