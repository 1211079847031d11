package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	// Packages
	httpclient "github.com/ragware/go-rag/pkg/httpclient"
	schema "github.com/ragware/go-rag/pkg/schema"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type IngestCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"Files to ingest"`
	Batch int      `default:"10" help:"Files per upload request"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *IngestCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		var mu sync.Mutex
		var results []schema.Response

		// Upload batches concurrently, one request per batch
		g, ctx := errgroup.WithContext(ctx)
		for _, paths := range batches(cmd.Paths, cmd.Batch) {
			g.Go(func() error {
				files := make([]schema.File, 0, len(paths))
				for _, path := range paths {
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()
					files = append(files, schema.File{Filename: filepath.Base(path), Body: f})
				}

				response, err := c.IngestFiles(ctx, files, schema.IngestFilesRequest{})
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				results = append(results, response)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return print(results)
	})
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// batches splits paths into slices of at most n elements
func batches(paths []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	var result [][]string
	for len(paths) > n {
		result = append(result, paths[:n])
		paths = paths[n:]
	}
	if len(paths) > 0 {
		result = append(result, paths)
	}
	return result
}
