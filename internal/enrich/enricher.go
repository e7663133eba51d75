package enrich

import (
	"context"
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"go-entrylevel-collector/internal/browser"
	"go-entrylevel-collector/internal/extract"
	"go-entrylevel-collector/internal/models"
	"go-entrylevel-collector/internal/scraper"
	"go-entrylevel-collector/utils"
)

const detailSelector = "section.show-more-less-html"

// DetailEnricher fetches the fields only present on a listing's own
// page. It never fails outright: the returned detail is always usable,
// degraded to defaults when anything goes wrong, so enrichment can
// never block persisting the base summary.
type DetailEnricher struct {
	manager *browser.Manager
}

func NewDetailEnricher(manager *browser.Manager) *DetailEnricher {
	return &DetailEnricher{manager: manager}
}

// Enrich opens a fresh session for one listing url and extracts its
// detail. The error is informational only; detail is always valid.
func (e *DetailEnricher) Enrich(ctx context.Context, jobURL string) (models.ListingDetail, error) {
	session, err := e.manager.NewSession()
	if err != nil {
		log.Printf("      ⚠️ Could not acquire browser session: %v", err)
		return models.NewListingDetail(), err
	}
	defer session.Close()

	return e.enrichPage(ctx, session.Page(), jobURL)
}

// enrichPage drives an already-open page; split out so tests can feed
// a route-mocked page.
func (e *DetailEnricher) enrichPage(ctx context.Context, page playwright.Page, jobURL string) (models.ListingDetail, error) {
	detail := models.NewListingDetail()

	if ctx.Err() != nil {
		return detail, ctx.Err()
	}

	if _, err := page.Goto(jobURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(browser.NavigationTimeoutMs),
	}); err != nil {
		log.Printf("      ⚠️ Detail navigation failed: %v", err)
		return detail, fmt.Errorf("%w: %v", scraper.ErrNavigation, err)
	}

	// Missing detail container is tolerated; extract whatever is there.
	if _, err := page.WaitForSelector(detailSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(browser.SelectorTimeoutMs),
	}); err != nil {
		log.Printf("      ⚠️ Detail container not found, extracting anyway")
	}

	utils.RandomDelay(300, 800)
	utils.MouseJiggle(page)

	html, err := page.Content()
	if err != nil {
		log.Printf("      ⚠️ Could not read detail content: %v", err)
		return detail, err
	}

	extracted, err := extract.Detail(html)
	if err != nil {
		log.Printf("      ⚠️ Detail extraction failed: %v", err)
		return detail, err
	}

	return extracted, nil
}
