package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/goquery"
	"github.com/fwojciec/toolscout/htmltomarkdown"
	"github.com/fwojciec/toolscout/readability"
	"github.com/fwojciec/toolscout/scout"
	tsslog "github.com/fwojciec/toolscout/slog"
	"github.com/fwojciec/toolscout/trafilatura"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    toolscout.Fetcher
	Summarizer toolscout.Summarizer
}

// PageFetcher returns a logged page fetcher that extracts main text with text.
func (d *Dependencies) PageFetcher(text toolscout.TextExtractor) toolscout.PageFetcher {
	loader := scout.NewLoader(d.Fetcher, goquery.NewParser(text))
	return tsslog.NewLoggingPageFetcher(loader, d.logger())
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retries   int           `default:"0" help:"Retry failed fetches with backoff"`
	ChromeTLS bool          `name:"chrome-tls" help:"Present a Chrome TLS fingerprint"`
	Render    bool          `help:"Render pages in headless Chrome"`
	Stealth   bool          `help:"Hide headless browser markers (with --render)"`
	Verbose   bool          `short:"v" help:"Log extraction diagnostics"`
	Model     string        `default:"${default_model}" help:"Gemini model used for summaries"`
	APIKey    string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`

	Tools ToolsCmd `cmd:"" help:"Extract AI tool listings from a directory page"`
	Page  PageCmd  `cmd:"" help:"Extract text, links, and videos from a web page"`
}

// ToolsCmd is the "tools" subcommand.
type ToolsCmd struct {
	URL       string   `arg:"" optional:"" default:"https://www.futuretools.io/" help:"Directory page URL"`
	Format    []string `short:"f" default:"list" help:"Output format: list or paragraphs (repeatable)"`
	Summarize bool     `default:"true" negatable:"" help:"Summarize long tool descriptions"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	URLs   []string `arg:"" name:"url" help:"Page URL; later URLs are tried when earlier ones fail"`
	Format []string `short:"f" default:"list" help:"Output format: list or paragraphs (repeatable)"`
	Text   string   `default:"heuristic" enum:"heuristic,readability,trafilatura,markdown" help:"Main text strategy"`
}

// textExtractor returns the main text strategy with the given name.
func textExtractor(name string) toolscout.TextExtractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "markdown":
		return htmltomarkdown.NewExtractor()
	default:
		return goquery.NewTextExtractor()
	}
}
