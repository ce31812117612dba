package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Default article URLs for the 2025 offseason.
const (
	DefaultTradeURL      = "https://www.nba.com/news/2025-offseason-trade-tracker"
	DefaultFreeAgencyURL = "https://www.nba.com/news/nba-offseason-deals-2025"
	DefaultDraftURL      = "https://www.nba.com/news/2025-draft-results-picks-1-59"
)

// Sources lists the pages scraped by the generator. An empty URL skips that page.
type Sources struct {
	TradeURL      string
	FreeAgencyURL string
	DraftURL      string
}

// DefaultSources returns the 2025 offseason pages.
func DefaultSources() Sources {
	return Sources{
		TradeURL:      DefaultTradeURL,
		FreeAgencyURL: DefaultFreeAgencyURL,
		DraftURL:      DefaultDraftURL,
	}
}

// PageSource returns the visible text of a page.
type PageSource interface {
	PageText(ctx context.Context, url string) (string, error)
}

// HTTPPageSource downloads pages and extracts their text with goquery.
type HTTPPageSource struct {
	client    *http.Client
	userAgent string
}

// NewHTTPPageSource returns a page source with the given request timeout.
func NewHTTPPageSource(timeout time.Duration, userAgent string) *HTTPPageSource {
	return &HTTPPageSource{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// PageText implements PageSource. Script contents are kept: the draft page
// embeds player ids in inline JSON.
func (s *HTTPPageSource) PageText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return doc.Text(), nil
}
