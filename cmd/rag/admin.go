package main

import (
	"context"

	// Packages
	httpclient "github.com/ragware/go-rag/pkg/httpclient"
	schema "github.com/ragware/go-rag/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type DeleteCmd struct {
	Keys   []string `arg:"" help:"Metadata keys to match"`
	Values []string `required:"" help:"Metadata values to match, in key order"`
}

type LogsCmd struct {
	Type    string `help:"Log type filter"`
	MaxRuns int    `help:"Maximum number of runs to return"`
}

type DocumentsCmd struct {
	Documents []string `help:"Filter by document IDs"`
	Users     []string `help:"Filter by user IDs"`
}

type SettingsCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *DeleteCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		response, err := c.Delete(ctx, schema.DeleteRequest{
			Keys:   cmd.Keys,
			Values: cmd.Values,
		})
		if err != nil {
			return err
		}
		return print(response)
	})
}

func (cmd *LogsCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		request := schema.LogsRequest{MaxRunsRequested: cmd.MaxRuns}
		if cmd.Type != "" {
			request.LogTypeFilter = &cmd.Type
		}
		response, err := c.Logs(ctx, request)
		if err != nil {
			return err
		}
		return print(response)
	})
}

func (cmd *DocumentsCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		response, err := c.DocumentsOverview(ctx, schema.DocumentsOverviewRequest{
			DocumentIDs: cmd.Documents,
			UserIDs:     cmd.Users,
		})
		if err != nil {
			return err
		}
		return print(response)
	})
}

func (cmd *SettingsCmd) Run(globals *Globals) error {
	return run(globals, func(ctx context.Context, c *httpclient.Client) error {
		response, err := c.AppSettings(ctx)
		if err != nil {
			return err
		}
		return print(response)
	})
}
