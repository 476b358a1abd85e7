package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/toolscout"
)

// Ensure LoggingExtractor implements toolscout.ListingExtractor.
var _ toolscout.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor reports the diagnostic events and tally of each
// extraction run.
type LoggingExtractor struct {
	next   toolscout.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next toolscout.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, then logs each event and
// the final counts.
func (e *LoggingExtractor) Extract(ctx context.Context, root toolscout.Node) *toolscout.Extraction {
	begin := time.Now()
	x := e.next.Extract(ctx, root)

	for _, ev := range x.Events {
		e.logger.Log(ctx, eventLevel(ev.Kind), string(ev.Kind), eventAttrs(ev)...)
	}

	e.logger.Info("listing extraction",
		"rule", x.Tally.Rule,
		"containers", x.Tally.Containers,
		"accepted", x.Tally.Accepted,
		"rejected", x.Tally.Rejected,
		"missing_website", x.Tally.MissingWebsite,
		"missing_directory", x.Tally.MissingDirectory,
		"missing_description", x.Tally.MissingDescription,
		"duration", time.Since(begin),
	)
	return x
}

func eventLevel(kind toolscout.EventKind) slog.Level {
	switch kind {
	case toolscout.EventNoContainers, toolscout.EventSummaryFailed:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}

func eventAttrs(ev toolscout.ExtractEvent) []any {
	var attrs []any
	if ev.Container > 0 {
		attrs = append(attrs, "container", ev.Container)
	}
	if ev.Field != "" {
		attrs = append(attrs, "field", string(ev.Field))
	}
	if ev.Strategy != "" {
		attrs = append(attrs, "strategy", ev.Strategy)
	}
	if ev.Detail != "" {
		attrs = append(attrs, "detail", ev.Detail)
	}
	if ev.Snippet != "" {
		attrs = append(attrs, "snippet", ev.Snippet)
	}
	return attrs
}
