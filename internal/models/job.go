package models

import "time"

// SourceName identifies the listings site every record originates from.
const SourceName = "LinkedIn"

// Default values for fields whose markup may be absent.
const (
	DefaultEmploymentType  = "Other"
	DefaultExperienceLevel = "Entry Level"
	DefaultLocation        = "Remote/Unspecified"
)

// ListingSummary is the minimal record obtained from a search-results
// page. Immutable once produced by the scraper; CapturedAt is the
// capture-time stamp, not the site's true posting date.
type ListingSummary struct {
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	URL        string    `json:"url"`
	Source     string    `json:"source"`
	CapturedAt time.Time `json:"captured_at"`
}

// ListingDetail holds the fields only obtainable from a listing's own
// page. Every field is default-valued when the markup is missing,
// never absent.
type ListingDetail struct {
	Description     string   `json:"description"`
	EmploymentType  string   `json:"employment_type"`
	Salary          string   `json:"salary"`
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills"`
}

// NewListingDetail returns a detail with every field at its default.
func NewListingDetail() ListingDetail {
	return ListingDetail{
		EmploymentType:  DefaultEmploymentType,
		ExperienceLevel: DefaultExperienceLevel,
		Skills:          []string{},
	}
}

// JobRecord is the persisted unit: a summary merged with its detail.
// URL is the natural key; two records with the same url are the same
// job and must not both be persisted.
type JobRecord struct {
	ListingSummary
	ListingDetail
}

// Merge combines a summary with its enrichment into the record to
// persist. Records are never mutated after the single write.
func Merge(summary ListingSummary, detail ListingDetail) JobRecord {
	return JobRecord{ListingSummary: summary, ListingDetail: detail}
}
