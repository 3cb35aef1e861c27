package catalogfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/supplycart-backend/internal/logger"
	"github.com/yungbote/supplycart-backend/internal/normalization"
)

// Client pulls catalog records from one or more upstream feed URLs and
// normalizes them at the boundary. Failed fetches are surfaced as plain
// message errors; there is no automatic retry.
type Client struct {
	log        *logger.Logger
	httpClient *http.Client
	urls       []string
	maxInFlight int
}

type Record struct {
	normalization.CatalogItem
	Raw json.RawMessage
}

func NewClient(log *logger.Logger, feedURLs string) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	var urls []string
	for _, u := range strings.Split(feedURLs, ",") {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no catalog feed URLs configured")
	}
	return &Client{
		log:         log.With("service", "CatalogFeedClient"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		urls:        urls,
		maxInFlight: 4,
	}, nil
}

// FetchAll pulls every configured feed concurrently and returns the combined
// normalized records. One bad feed fails the whole sync; partial catalogs
// are worse than stale ones.
func (c *Client) FetchAll(ctx context.Context) ([]Record, error) {
	results := make([][]Record, len(c.urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxInFlight)
	for idx, url := range c.urls {
		idx, url := idx, url
		g.Go(func() error {
			records, err := c.fetchOne(gctx, url)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", url, err)
			}
			results[idx] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var combined []Record
	for _, batch := range results {
		combined = append(combined, batch...)
	}
	return combined, nil
}

func (c *Client) fetchOne(ctx context.Context, url string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned %d: %s", resp.StatusCode, ErrorMessage(body))
	}
	return DecodeRecords(body)
}

// DecodeRecords accepts either a bare JSON array of item records or a
// wrapper object carrying one under "items" (or "data"/"products").
func DecodeRecords(body []byte) ([]Record, error) {
	var rawList []json.RawMessage
	if err := json.Unmarshal(body, &rawList); err != nil {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, fmt.Errorf("feed body is neither an array nor an object: %s", ErrorMessage(body))
		}
		var inner json.RawMessage
		for _, key := range []string{"items", "data", "products"} {
			if v, ok := wrapper[key]; ok {
				inner = v
				break
			}
		}
		if inner == nil {
			return nil, fmt.Errorf("feed object carries no item list")
		}
		if err := json.Unmarshal(inner, &rawList); err != nil {
			return nil, fmt.Errorf("feed item list is not an array")
		}
	}

	records := make([]Record, 0, len(rawList))
	for _, raw := range rawList {
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		item, err := normalization.NormalizeItem(fields)
		if err != nil {
			continue
		}
		records = append(records, Record{CatalogItem: item, Raw: raw})
	}
	return records, nil
}

// ErrorMessage coerces a response body into a displayable message string.
// Non-JSON bodies (HTML error pages and the like) become a trimmed snippet
// rather than a parse failure.
func ErrorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		// Back up to a rune boundary so the cut never mangles UTF-8.
		cut := 200
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut]
	}
	if snippet == "" {
		return "upstream request failed"
	}
	return snippet
}
