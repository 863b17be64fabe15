package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devfolio/devfolio-api/internal/apperror"
	"github.com/devfolio/devfolio-api/internal/portfolio"
	"github.com/devfolio/devfolio-api/pkg/metrics"
)

const masterKeyHeader = "X-Master-Key"

// Client talks to a JSONBin-style bin API: one bin, one JSON document.
// GET {base}/b/{bin}/latest returns {"record": <document>, "metadata": ...};
// PUT {base}/b/{bin} overwrites the record with the request body.
type Client struct {
	baseURL string
	binID   string
	apiKey  string
	http    *http.Client
}

// NewClient builds a client for the given bin. timeout bounds each round
// trip; there is no other cancellation beyond the caller's context.
func NewClient(baseURL, binID, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		binID:   binID,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// binEnvelope is the read-side wrapper the bin API puts around the document.
type binEnvelope struct {
	Record portfolio.Document `json:"record"`
}

func (c *Client) Load(ctx context.Context) (*portfolio.Document, error) {
	timer := metrics.TrackStoreOperation("load")
	defer timer.ObserveDuration()

	url := fmt.Sprintf("%s/b/%s/latest", c.baseURL, c.binID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.StoreUnavailable("load", err)
	}
	req.Header.Set(masterKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.TrackStoreError("load")
		return nil, apperror.StoreUnavailable("load", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.TrackStoreError("load")
		b, _ := io.ReadAll(resp.Body)
		return nil, apperror.StoreUnavailable("load",
			fmt.Errorf("bin returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
	}

	var env binEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.TrackStoreError("load")
		return nil, apperror.StoreUnavailable("load", err)
	}

	doc := env.Record
	doc.Normalize()
	return &doc, nil
}

func (c *Client) Save(ctx context.Context, doc *portfolio.Document) error {
	timer := metrics.TrackStoreOperation("save")
	defer timer.ObserveDuration()

	doc.Normalize()
	body, err := json.Marshal(doc)
	if err != nil {
		return apperror.StoreUnavailable("save", err)
	}

	url := fmt.Sprintf("%s/b/%s", c.baseURL, c.binID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return apperror.StoreUnavailable("save", err)
	}
	req.Header.Set(masterKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.TrackStoreError("save")
		return apperror.StoreUnavailable("save", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.TrackStoreError("save")
		b, _ := io.ReadAll(resp.Body)
		return apperror.StoreUnavailable("save",
			fmt.Errorf("bin returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
	}
	return nil
}
