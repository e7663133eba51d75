package scraper

import (
	"context"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
)

//helper start mock browser
func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright runtime not available: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("could not launch browser: %v", err)
	}
	page, err := browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	return pw, browser, page
}

const mockResultsHTML = `<html><body>
<ul class="jobs-search__results-list">
  <li>
    <a class="base-card__full-link" href="https://example.com/jobs/view/42"></a>
    <h3 class="base-search-card__title">Junior Go Developer</h3>
    <h4 class="base-search-card__subtitle">Acme Corp</h4>
    <span class="job-search-card__location">Remote</span>
  </li>
  <li>
    <h3 class="base-search-card__title">No Link Role</h3>
    <h4 class="base-search-card__subtitle">Globex</h4>
  </li>
</ul>
</body></html>`

func TestListingScraper_ScrapePages_MockedSite(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	//serve the same fixture for every results page
	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        mockResultsHTML,
		})
	})

	s := &ListingScraper{}
	summaries, err := s.scrapePages(context.Background(), page, "Berlin", 3)

	assert.NoError(t, err)
	//1 valid card per page, 3 pages, item without link dropped each pass
	assert.Len(t, summaries, 3)
	for _, summary := range summaries {
		assert.Equal(t, "Junior Go Developer", summary.Title)
		assert.Equal(t, "https://example.com/jobs/view/42", summary.URL)
		assert.False(t, summary.CapturedAt.IsZero(), "each summary must carry a capture time")
	}
}

func TestListingScraper_NavigationFailureAbortsCall(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	page.Route("**/*", func(route playwright.Route) {
		route.Abort("failed")
	})

	s := &ListingScraper{}
	summaries, err := s.scrapePages(context.Background(), page, "", 2)

	assert.ErrorIs(t, err, ErrNavigation)
	assert.Empty(t, summaries)
}

func TestSearchURL(t *testing.T) {
	first := searchURL("", 0)
	assert.True(t, strings.Contains(first, "f_E=2"))
	assert.True(t, strings.Contains(first, "f_JT=F"))
	assert.True(t, strings.Contains(first, "start=0"))
	assert.False(t, strings.Contains(first, "location="))

	third := searchURL("São Paulo", 2)
	assert.True(t, strings.Contains(third, "start=50"))
	assert.True(t, strings.Contains(third, "location=Sao+Paulo"))
}
