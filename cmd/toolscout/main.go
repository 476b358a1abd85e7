package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/cache"
	"github.com/fwojciec/toolscout/gemini"
	tshttp "github.com/fwojciec/toolscout/http"
	"github.com/fwojciec/toolscout/rod"
	"github.com/fwojciec/toolscout/scout"
	tsslog "github.com/fwojciec/toolscout/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the network fetcher. Set before calling Run().
	Fetcher toolscout.Fetcher

	// Summarizer overrides Gemini initialization. Set before calling Run().
	Summarizer toolscout.Summarizer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("toolscout"),
		kong.Description("Extract AI tool listings and page content from the web"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_model": gemini.DefaultModel},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'toolscout --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
	}
	defer fetcher.Close()

	fetcher = tsslog.NewLoggingFetcher(fetcher, deps.Logger)
	if cli.Retries > 0 {
		fetcher = scout.NewRetryFetcher(fetcher, scout.RetryDelays(cli.Retries), func(format string, args ...any) {
			deps.Logger.Warn(fmt.Sprintf(format, args...))
		})
	}
	deps.Fetcher = fetcher

	command := strings.Fields(kongCtx.Command())[0]
	if command == "page" || cli.Tools.Summarize {
		deps.Summarizer = m.Summarizer
		if deps.Summarizer == nil {
			deps.Summarizer = newSummarizer(ctx, cli.APIKey, cli.Model, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the rendering or the plain HTTP fetcher.
func newFetcher(cli *CLI) (toolscout.Fetcher, error) {
	if cli.Render {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if cli.Stealth {
			opts = append(opts, rod.WithStealth())
		}
		return rod.NewFetcher(opts...)
	}
	opts := []tshttp.Option{tshttp.WithTimeout(cli.Timeout)}
	if cli.ChromeTLS {
		opts = append(opts, tshttp.WithChromeTLS())
	}
	return tshttp.NewFetcher(opts...), nil
}

// newSummarizer initializes the summarizer once for the process. Without an
// API key or a working client it returns a disabled summarizer and logs why.
func newSummarizer(ctx context.Context, apiKey, model string, logger *slog.Logger) toolscout.Summarizer {
	if apiKey == "" {
		reason := "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey"
		logger.Warn("summarization disabled", "reason", reason)
		return toolscout.NewDisabledSummarizer(reason)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("summarization disabled", "reason", "failed to connect to Gemini API", "err", err)
		return toolscout.NewDisabledSummarizer(err.Error())
	}

	var tokens toolscout.TokenCounter
	if tc, err := gemini.NewTokenCounter(model); err == nil {
		tokens = tc
	} else {
		logger.Debug("token counter unavailable", "model", model, "err", err)
	}

	s := gemini.NewSummarizer(client, model)
	return cache.NewSummarizer(tsslog.NewLoggingSummarizer(s, tokens, logger), cache.DefaultMaxEntries)
}
