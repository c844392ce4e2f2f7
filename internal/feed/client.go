package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// fetchTimeout bounds the single outbound feed request. A hung upstream must
// never stall startup or a refresh.
const fetchTimeout = 15 * time.Second

// Client fetches raw event records from the configured feed, substituting
// the bundled fallback dataset when the feed is unreachable or malformed.
type Client struct {
	httpClient   *http.Client
	feedURL      string
	limit        int
	fallbackPath string
	logger       *slog.Logger
}

// NewClient creates a feed client. limit caps the number of records
// requested from the feed; fallbackPath points at the local JSON dataset.
func NewClient(feedURL string, limit int, fallbackPath string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: fetchTimeout},
		feedURL:      feedURL,
		limit:        limit,
		fallbackPath: fallbackPath,
		logger:       logger,
	}
}

// Fetch returns one batch of raw records. fromFallback reports whether the
// batch came from the local dataset instead of the live feed. Feed failures
// are recovered here; the only unrecoverable outcome is an empty batch.
func (c *Client) Fetch(ctx context.Context) (records []Record, fromFallback bool, err error) {
	records, err = c.fetchRemote(ctx)
	if err == nil {
		return records, false, nil
	}

	c.logger.Warn("feed fetch failed, using fallback dataset", "error", err, "url", c.feedURL)

	records, err = c.loadFallback()
	if err != nil {
		c.logger.Error("fallback dataset unavailable, serving zero events",
			"error", err, "path", c.fallbackPath)
		return []Record{}, true, nil
	}
	return records, true, nil
}

func (c *Client) fetchRemote(ctx context.Context) ([]Record, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("parsing feed URL: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed body: %w", err)
	}
	records, err := c.decodeBatch(body)
	if err != nil {
		return nil, fmt.Errorf("decoding feed body: %w", err)
	}
	return records, nil
}

func (c *Client) loadFallback() ([]Record, error) {
	data, err := os.ReadFile(c.fallbackPath)
	if err != nil {
		return nil, fmt.Errorf("reading fallback dataset: %w", err)
	}
	records, err := c.decodeBatch(data)
	if err != nil {
		return nil, fmt.Errorf("decoding fallback dataset: %w", err)
	}
	return records, nil
}

// decodeBatch decodes a feed payload record by record. Odd-shaped fields
// degrade to defaults inside the Record decoder; a record that cannot be
// decoded at all is skipped so it never costs the rest of the batch.
func (c *Client) decodeBatch(data []byte) ([]Record, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			c.logger.Warn("skipping undecodable feed record", "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
