package pipeline

import (
	"log"

	"go-entrylevel-collector/internal/models"
)

// Sink receives per-listing outcomes so callers can observe failure
// conditions and tests can assert on them instead of scraping logs.
type Sink interface {
	Saved(record models.JobRecord)
	Duplicate(url string)
	Failed(url string, err error)
}

// LogSink writes outcomes to the standard logger.
type LogSink struct{}

func (LogSink) Saved(record models.JobRecord) {
	log.Printf("  ✅ Saved: %s - %s", record.Title, record.Company)
}

func (LogSink) Duplicate(url string) {
	log.Printf("  ⏭️ Already stored: %s", url)
}

func (LogSink) Failed(url string, err error) {
	log.Printf("  ⚠️ Failed: %s: %v", url, err)
}

// NopSink discards all outcomes.
type NopSink struct{}

func (NopSink) Saved(models.JobRecord) {}
func (NopSink) Duplicate(string)       {}
func (NopSink) Failed(string, error)   {}
