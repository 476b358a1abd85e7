package main

import (
	"fmt"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/scout"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	svc := scout.NewService(deps.PageFetcher(textExtractor(c.Text)), nil, deps.Summarizer)

	page, err := svc.Website(deps.Ctx, c.URLs...)
	if err != nil {
		if toolscout.ErrorCode(err) != toolscout.EUNAVAILABLE {
			fmt.Fprintf(deps.Stderr, "error: %s\n", toolscout.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "%s\n", toolscout.ErrorMessage(err))
	}

	report := toolscout.Report{Kind: toolscout.KindWebsite, Page: page}
	for _, format := range c.Format {
		fmt.Fprintln(deps.Stdout, toolscout.Render(format, report))
	}
	return nil
}
