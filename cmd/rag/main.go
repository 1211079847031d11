package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	httpclient "github.com/ragware/go-rag/pkg/httpclient"
	version "github.com/ragware/go-rag/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	URL     string `env:"RAG_URL" default:"http://localhost:8000" help:"Service base URL"`
	Prefix  string `env:"RAG_PREFIX" default:"/v1" help:"Service path prefix"`
	Debug   bool   `name:"debug" help:"Enable debug output"`
	Verbose bool   `name:"verbose" help:"Enable verbose output"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	// Commands
	Search    SearchCmd    `cmd:"" help:"Search ingested documents"`
	Rag       RagCmd       `cmd:"" help:"Ask a question with retrieval-augmented generation"`
	Ingest    IngestCmd    `cmd:"" help:"Ingest files"`
	Delete    DeleteCmd    `cmd:"" help:"Delete entries by key and value"`
	Logs      LogsCmd      `cmd:"" help:"Show run logs"`
	Documents DocumentsCmd `cmd:"" help:"List documents"`
	Settings  SettingsCmd  `cmd:"" help:"Show application settings"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Retrieval service command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VersionCmd) Run(globals *Globals) error {
	data, err := json.MarshalIndent(version.Metadata(execName()), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// run creates a client from the global flags and invokes fn with it
func run(globals *Globals, fn func(ctx context.Context, c *httpclient.Client) error) error {
	opts := []client.ClientOpt{
		client.OptUserAgent(execName() + "/" + version.Version()),
	}
	if globals.Debug || globals.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, globals.Verbose))
	}

	c, err := httpclient.New(globals.URL,
		httpclient.OptPrefix(globals.Prefix),
		httpclient.OptClient(opts...),
	)
	if err != nil {
		return err
	}
	return fn(globals.ctx, c)
}

// print writes a decoded response as indented JSON
func print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func execName() string {
	name, err := os.Executable()
	if err != nil {
		return "rag"
	}
	return filepath.Base(name)
}
