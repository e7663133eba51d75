// Pure extraction: rendered HTML in, typed records out. No browser
// dependency so everything here is unit-testable against fixtures.

package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-entrylevel-collector/internal/models"
)

// Guest job-search markup, kept in one place so a site markup change is
// a one-file fix.
const (
	selJobCard      = "ul.jobs-search__results-list li"
	selCardTitle    = "h3.base-search-card__title"
	selCardCompany  = "h4.base-search-card__subtitle"
	selCardLink     = "a.base-card__full-link"
	selCardLocation = "span.job-search-card__location"

	selDescription   = "div.show-more-less-html__markup"
	selCriteriaItem  = "li.description__job-criteria-item"
	selCriteriaLabel = "h3.description__job-criteria-subheader"
	selCriteriaValue = "span.description__job-criteria-text"
	selSkillItem     = "ul.job-details-skills-list li"
)

// Summaries maps a search-results page to listing summaries. An item
// missing title, company, or link is dropped — that is the filtering
// rule, not an error. CapturedAt is stamped by the caller.
func Summaries(html string) ([]models.ListingSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	summaries := []models.ListingSummary{}
	doc.Find(selJobCard).Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(selCardTitle).First().Text())
		company := strings.TrimSpace(card.Find(selCardCompany).First().Text())
		href, _ := card.Find(selCardLink).First().Attr("href")
		href = strings.TrimSpace(href)
		if title == "" || company == "" || href == "" {
			return
		}

		location := strings.TrimSpace(card.Find(selCardLocation).First().Text())
		if location == "" {
			location = models.DefaultLocation
		}

		summaries = append(summaries, models.ListingSummary{
			Title:    title,
			Company:  company,
			Location: location,
			URL:      href,
			Source:   models.SourceName,
		})
	})

	return summaries, nil
}

// Detail maps a listing's own page to its enrichment fields. Criteria
// labels are classified by case-sensitive substring match; unmatched
// labels are ignored and absent labels keep their defaults.
func Detail(html string) (models.ListingDetail, error) {
	detail := models.NewListingDetail()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return detail, fmt.Errorf("parse detail page: %w", err)
	}

	detail.Description = strings.TrimSpace(doc.Find(selDescription).First().Text())

	doc.Find(selCriteriaItem).Each(func(_ int, item *goquery.Selection) {
		label := strings.TrimSpace(item.Find(selCriteriaLabel).First().Text())
		value := strings.TrimSpace(item.Find(selCriteriaValue).First().Text())
		if value == "" {
			return
		}
		switch {
		case strings.Contains(label, "Employment type"):
			detail.EmploymentType = value
		case strings.Contains(label, "Salary"), strings.Contains(label, "Compensation"):
			detail.Salary = value
		case strings.Contains(label, "Experience level"):
			detail.ExperienceLevel = value
		}
	})

	doc.Find(selSkillItem).Each(func(_ int, item *goquery.Selection) {
		if skill := strings.TrimSpace(item.Text()); skill != "" {
			detail.Skills = append(detail.Skills, skill)
		}
	})

	return detail, nil
}
