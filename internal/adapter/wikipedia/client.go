// Package wikipedia implements domain.Updater against the "List of dry
// communities by U.S. state" reference page. It is strictly best-effort:
// one attempt, no retry, and any failure leaves the caller's registry
// untouched.
package wikipedia

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/couchcryptid/dry-county-map/internal/domain"
)

// DefaultURL is the public reference page for county-level dry laws.
const DefaultURL = "https://en.wikipedia.org/wiki/List_of_dry_communities_by_U.S._state"

// countyRe extracts a county name from list-item text such as
// "Benton County (dry since 1934)".
var countyRe = regexp.MustCompile(`^([A-Z][A-Za-z .'\-]*?) County\b`)

// moistMarkers are phrasings the page uses for partially restricted
// counties. A matched county without any of these is classified Dry.
var moistMarkers = []string{"moist", "beer", "wet city", "wet cities", "partial", "some municipalities", "except"}

// Client fetches and parses the reference page.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Wikipedia updater. An empty url selects DefaultURL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Refresh retrieves the page and extracts per-state county entries.
// Any failure (network, HTTP status, parse, or a page yielding zero
// counties) comes back as *domain.FetchError.
func (c *Client) Refresh(ctx context.Context) ([]domain.CountyStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: c.url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", "dry-county-map/1.0 (+https://github.com/couchcryptid/dry-county-map)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{URL: c.url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: c.url, Err: fmt.Errorf("parse page: %w", err)}
	}

	entries := c.parse(doc)
	if len(entries) == 0 {
		return nil, &domain.FetchError{URL: c.url, Err: fmt.Errorf("no county entries found, page layout may have changed")}
	}

	c.logger.Info("parsed remote county entries", "url", c.url, "entries", len(entries))
	return entries, nil
}

// parse walks the page's per-state sections: each state is a heading, and
// the list items underneath it name restricted counties. The page does not
// encode the three-tier classification uniformly, so counties default to
// Dry unless the item's own text signals partial restriction.
func (c *Client) parse(doc *goquery.Document) []domain.CountyStatus {
	var entries []domain.CountyStatus

	doc.Find("h2 span.mw-headline, h3 span.mw-headline").Each(func(_ int, headline *goquery.Selection) {
		state := strings.TrimSpace(headline.Text())
		if _, ok := domain.StateFIPS(state); !ok {
			return
		}

		heading := headline.Closest("h2, h3")
		heading.NextUntil("h2, h3").Find("li").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			m := countyRe.FindStringSubmatch(text)
			if m == nil {
				return
			}
			entries = append(entries, domain.CountyStatus{
				Name:   m[1],
				State:  state,
				Status: classify(text),
				Note:   "Wikipedia: List of dry communities by U.S. state",
			})
		})
	})

	return entries
}

func classify(text string) domain.Status {
	lower := strings.ToLower(text)
	for _, marker := range moistMarkers {
		if strings.Contains(lower, marker) {
			return domain.StatusMoist
		}
	}
	return domain.StatusDry
}
