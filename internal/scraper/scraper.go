package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"
	"unicode"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-entrylevel-collector/internal/browser"
	"go-entrylevel-collector/internal/extract"
	"go-entrylevel-collector/internal/models"
	"go-entrylevel-collector/utils"
)

// ErrNavigation marks a navigation that timed out or could not reach
// the target; it aborts the current scrape call only.
var ErrNavigation = errors.New("navigation failed")

const (
	searchBaseURL   = "https://www.linkedin.com/jobs/search"
	resultsSelector = "ul.jobs-search__results-list"
	resultsPerPage  = 25
)

// ListingScraper collects listing summaries from the paginated
// entry-level, full-time search.
type ListingScraper struct {
	manager *browser.Manager
}

func NewListingScraper(manager *browser.Manager) *ListingScraper {
	return &ListingScraper{manager: manager}
}

// foldLocation strips diacritics so accented location input survives
// query encoding ("São Paulo" and "Sao Paulo" hit the same search).
func foldLocation(location string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, location)
	return folded
}

// searchURL builds the results URL for one page offset.
// f_E=2 selects entry-level roles, f_JT=F full-time.
func searchURL(location string, pageIndex int) string {
	target := fmt.Sprintf("%s?f_E=2&f_JT=F&start=%d", searchBaseURL, pageIndex*resultsPerPage)
	if location != "" {
		target += "&location=" + url.QueryEscape(foldLocation(location))
	}
	return target
}

// Scrape collects summaries across pageCount result pages. The session
// is released on every path. A navigation failure aborts the call and
// returns whatever was accumulated along with a typed error.
func (s *ListingScraper) Scrape(ctx context.Context, location string, pageCount int) ([]models.ListingSummary, error) {
	session, err := s.manager.NewSession()
	if err != nil {
		log.Printf("❌ Could not acquire browser session: %v", err)
		return []models.ListingSummary{}, err
	}
	defer session.Close()

	return s.scrapePages(ctx, session.Page(), location, pageCount)
}

// scrapePages drives an already-open page; split out so tests can feed
// a route-mocked page.
func (s *ListingScraper) scrapePages(ctx context.Context, page playwright.Page, location string, pageCount int) ([]models.ListingSummary, error) {
	summaries := []models.ListingSummary{}

	for pageIndex := 0; pageIndex < pageCount; pageIndex++ {
		if ctx.Err() != nil {
			return summaries, ctx.Err()
		}

		target := searchURL(location, pageIndex)
		log.Printf("  🔍 Results page %d/%d: %s", pageIndex+1, pageCount, target)

		if _, err := page.Goto(target, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(browser.NavigationTimeoutMs),
		}); err != nil {
			log.Printf("    ⚠️ Navigation failed: %v", err)
			utils.NewScreenshotDebugger().CaptureAndLog(page, "search-navigation-failed", "🚨 Search results page unreachable")
			return summaries, fmt.Errorf("%w: %v", ErrNavigation, err)
		}

		// Missing results container is tolerated: a slow or shifted page
		// may still hold zero or partial results.
		if _, err := page.WaitForSelector(resultsSelector, playwright.PageWaitForSelectorOptions{
			Timeout: playwright.Float(browser.SelectorTimeoutMs),
		}); err != nil {
			log.Printf("    ⚠️ Results container not found, extracting anyway")
		}

		utils.RandomDelay(500, 1500)
		utils.SmoothScroll(page)

		html, err := page.Content()
		if err != nil {
			log.Printf("    ⚠️ Could not read page content: %v", err)
			continue
		}

		pageSummaries, err := extract.Summaries(html)
		if err != nil {
			log.Printf("    ⚠️ Extraction failed: %v", err)
			continue
		}

		capturedAt := time.Now()
		for i := range pageSummaries {
			pageSummaries[i].CapturedAt = capturedAt
		}

		summaries = append(summaries, pageSummaries...)
		log.Printf("    📦 Extracted %d listings (total %d)", len(pageSummaries), len(summaries))
	}

	return summaries, nil
}
