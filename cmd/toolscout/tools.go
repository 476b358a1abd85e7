package main

import (
	"fmt"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/listing"
	"github.com/fwojciec/toolscout/scout"
	tsslog "github.com/fwojciec/toolscout/slog"
)

// Run executes the tools command.
func (c *ToolsCmd) Run(deps *Dependencies) error {
	site, err := listing.SiteFor(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", toolscout.ErrorMessage(err))
		return err
	}

	var summarizer toolscout.Summarizer
	if c.Summarize {
		summarizer = deps.Summarizer
	}
	extractor := tsslog.NewLoggingExtractor(listing.NewExtractor(site, summarizer), deps.logger())
	svc := scout.NewService(deps.PageFetcher(nil), extractor, nil)

	extraction, err := svc.Tools(deps.Ctx, c.URL)
	if err != nil {
		if toolscout.ErrorCode(err) != toolscout.EUNAVAILABLE {
			fmt.Fprintf(deps.Stderr, "error: %s\n", toolscout.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "No data extracted from %s: %s\n", c.URL, toolscout.ErrorMessage(err))
		extraction = &toolscout.Extraction{}
	}

	report := toolscout.Report{Kind: toolscout.KindTools, Tools: extraction.Tools}
	for _, format := range c.Format {
		fmt.Fprintln(deps.Stdout, toolscout.Render(format, report))
	}
	if err == nil {
		fmt.Fprint(deps.Stderr, extraction.Tally.Summary())
	}
	return nil
}
