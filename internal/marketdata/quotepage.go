package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchChangeFromQuotePage scrapes the percent change from the HTML quote
// page. Fallback path for when the JSON chart endpoint is unavailable for a
// symbol; the page embeds live fields as fin-streamer elements.
func (c *Client) FetchChangeFromQuotePage(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.QuotePageURL, symbol)

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("quote page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d for quote page %s", resp.StatusCode, symbol)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse quote page: %w", err)
	}

	selector := fmt.Sprintf(`fin-streamer[data-field="regularMarketChangePercent"][data-symbol=%q]`, symbol)
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		// Some page variants omit the symbol attribute on the main quote
		node = doc.Find(`fin-streamer[data-field="regularMarketChangePercent"]`).First()
	}
	if node.Length() == 0 {
		return 0, fmt.Errorf("change field not found on quote page for %s", symbol)
	}

	raw, ok := node.Attr("data-value")
	if !ok {
		raw = strings.Trim(node.Text(), "()%+ ")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse change %q for %s: %w", raw, symbol, err)
	}

	return round2(value), nil
}
