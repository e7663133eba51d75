package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-entrylevel-collector/internal/models"
	"go-entrylevel-collector/internal/store"
)

// Scraper collects listing summaries from the search results.
type Scraper interface {
	Scrape(ctx context.Context, location string, pageCount int) ([]models.ListingSummary, error)
}

// Enricher fetches detail fields for one listing url. The returned
// detail must be usable even when err is non-nil.
type Enricher interface {
	Enrich(ctx context.Context, url string) (models.ListingDetail, error)
}

const DefaultPageCount = 3

// Options configure one pipeline run. An empty Location searches
// unfiltered; PageCount below 1 falls back to the default.
type Options struct {
	Location  string
	PageCount int
}

// Result is the outcome of one run: the newly created records in
// extraction order, plus the counters that would otherwise only be
// visible in logs.
type Result struct {
	Records []models.JobRecord
	Saved   int
	Skipped int
	Failed  int
}

// Pipeline orchestrates scrape → lookup → normalize → enrich → persist.
// Fault isolation is per listing: one bad summary never aborts the rest.
type Pipeline struct {
	scraper  Scraper
	enricher Enricher
	store    store.Store
	sink     Sink
}

func New(scraper Scraper, enricher Enricher, st store.Store, sink Sink) *Pipeline {
	if sink == nil {
		sink = LogSink{}
	}
	return &Pipeline{scraper: scraper, enricher: enricher, store: st, sink: sink}
}

// Run scrapes the search results and processes each summary in
// extraction order, one at a time.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.PageCount < 1 {
		opts.PageCount = DefaultPageCount
	}

	result := Result{Records: []models.JobRecord{}}

	summaries, err := p.scraper.Scrape(ctx, opts.Location, opts.PageCount)
	if err != nil {
		// A degraded scrape still yields processable summaries; only the
		// remaining pages were lost.
		log.Printf("⚠️ Scrape ended early: %v", err)
	}
	log.Printf("📦 Collected %d summaries", len(summaries))

	for _, summary := range summaries {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		saved, err := p.process(ctx, summary, &result)
		if err != nil {
			result.Failed++
			p.sink.Failed(summary.URL, err)
			continue
		}
		if saved {
			result.Saved++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

// process runs one summary through lookup → normalize → enrich → merge
// → persist. Returns whether a new record was persisted.
func (p *Pipeline) process(ctx context.Context, summary models.ListingSummary, result *Result) (bool, error) {
	if summary.URL == "" {
		return false, errors.New("summary has no url")
	}

	// Lookup: an existing record for the url means the job was already
	// persisted in a previous run (or earlier in this one).
	existing, err := p.store.FindByURL(ctx, summary.URL)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("lookup: %w", err)
	}
	if existing != nil {
		p.sink.Duplicate(summary.URL)
		return false, nil
	}

	// Normalize: an unset capture time must never be persisted.
	if summary.CapturedAt.IsZero() {
		summary.CapturedAt = time.Now()
	}

	// Enrich: the detail is always usable, failure degrades to defaults.
	detail, err := p.enricher.Enrich(ctx, summary.URL)
	if err != nil {
		log.Printf("  ℹ️ Enrichment degraded for %s: %v", summary.URL, err)
	}

	record := models.Merge(summary, detail)
	if err := p.store.Create(ctx, &record); err != nil {
		return false, fmt.Errorf("persist: %w", err)
	}

	result.Records = append(result.Records, record)
	p.sink.Saved(record)
	return true, nil
}
