package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// The retailer changes this markup frequently; the selectors below are the
// most stable variants observed and mirror the fallbacks browsers see.
const (
	selTitle         = "#productTitle"
	selPriceWhole    = "span.a-price-whole"
	selPriceOffscren = "#corePrice_feature_div .a-offscreen"
	selImageLanding  = "#landingImage"
	selImageWrapper  = "#imgTagWrapperId img"
	selAvailability  = "#availability"
)

var limitedStockPattern = regexp.MustCompile(`only \d+ left in stock`)

// parseSnapshot extracts a product snapshot from a scraped product page.
// A page without a product title is treated as a total fetch failure; a
// missing price or image degrades to zero values instead.
func parseSnapshot(r io.Reader) (*domain.Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing product page: %w", err)
	}

	name := strings.TrimSpace(doc.Find(selTitle).First().Text())
	if name == "" {
		return nil, fmt.Errorf("%w: no product title in page", ErrFetchFailed)
	}

	snap := &domain.Snapshot{
		Name:     name,
		Price:    parsePrice(doc),
		ImageURL: parseImageURL(doc),
		Stock:    parseStock(doc),
	}
	return snap, nil
}

// parsePrice reads the current price, preferring the whole-price span and
// falling back to the offscreen deal price. Returns zero when neither
// yields a parseable number; a zero price is "unknown", never an alert
// trigger.
func parsePrice(doc *goquery.Document) decimal.Decimal {
	if text := doc.Find(selPriceWhole).First().Text(); text != "" {
		// Whole-price spans carry a trailing decimal point ("1,34,900.").
		cleaned := cleanPriceText(text)
		if i := strings.IndexByte(cleaned, '.'); i >= 0 {
			cleaned = cleaned[:i]
		}
		if p, err := decimal.NewFromString(cleaned); err == nil {
			return p
		}
	}

	if text := doc.Find(selPriceOffscren).First().Text(); text != "" {
		if p, err := decimal.NewFromString(cleanPriceText(text)); err == nil {
			return p
		}
	}

	return decimal.Zero
}

func cleanPriceText(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	return strings.TrimSpace(s)
}

func parseImageURL(doc *goquery.Document) string {
	if src, ok := doc.Find(selImageLanding).First().Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := doc.Find(selImageWrapper).First().Attr("src"); ok {
		return src
	}
	return ""
}

// parseStock reads the availability block. "In stock" and "Only N left in
// stock" both count as available; anything else, including a missing
// block, is OUT_OF_STOCK.
func parseStock(doc *goquery.Document) domain.StockStatus {
	text := strings.ToLower(doc.Find(selAvailability).First().Text())
	if strings.Contains(text, "in stock") || limitedStockPattern.MatchString(text) {
		return domain.InStock
	}
	return domain.OutOfStock
}
