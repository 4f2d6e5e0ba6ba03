// Package cms wraps the hosted content source's GROQ query API. It is the
// sole data-ingestion boundary of the site: a fixed set of named queries, no
// ad hoc filtering, no retries, no caching.
package cms

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"context"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/config"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/errs"
	"github.com/rs/zerolog/log"
)

const defaultAPIVersion = "2024-01-01"

// Client executes GROQ queries against one project/dataset. It is
// constructed once at startup and never mutated afterwards, so it is safe to
// share across requests without locking.
type Client struct {
	projectID   string
	dataset     string
	apiVersion  string
	perspective string
	token       string
	useCDN      bool
	baseURL     string // overrides the derived host; used by tests
	httpClient  *http.Client
}

// NewClient builds the published-content client. When either required
// identifier (project ID, dataset) is missing it returns nil instead of an
// error: callers must treat nil as "feature unavailable, render fallback".
// The missing-configuration diagnostic is only logged in development.
func NewClient(cfg map[string]string) *Client {
	projectID := config.GetString(cfg, "SANITY_PROJECT_ID", "")
	dataset := config.GetString(cfg, "SANITY_DATASET", "")

	if projectID == "" || dataset == "" {
		if config.IsDevelopment(cfg) {
			var missing []string
			if projectID == "" {
				missing = append(missing, "SANITY_PROJECT_ID")
			}
			if dataset == "" {
				missing = append(missing, "SANITY_DATASET")
			}
			log.Warn().
				Strs("missing", missing).
				Msg("Content source not configured; pages will render with empty content")
		}
		return nil
	}

	return &Client{
		projectID:   projectID,
		dataset:     dataset,
		apiVersion:  config.GetString(cfg, "SANITY_API_VERSION", defaultAPIVersion),
		perspective: "published",
		useCDN:      !config.IsDevelopment(cfg),
		baseURL:     config.GetString(cfg, "SANITY_BASE_URL", ""),
		httpClient:  http.DefaultClient,
	}
}

// NewPreviewClient builds the drafts-perspective client used by preview mode.
// It bypasses the CDN and authenticates with the API token so unpublished
// content is visible. Never used in production rendering paths.
func NewPreviewClient(cfg map[string]string) *Client {
	client := NewClient(cfg)
	if client == nil {
		return nil
	}

	preview := *client
	preview.perspective = "drafts"
	preview.useCDN = false
	preview.token = config.GetString(cfg, "SANITY_API_TOKEN", "")
	return &preview
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Fetch runs one named query with optional string parameters and decodes the
// result into out. It does exactly one round trip: no retry, no in-process
// timeout beyond the request context, no caching. Failures are returned for
// the call site to convert into an empty or absent result.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]string, out any) error {
	endpoint, err := c.queryURL(query, params)
	if err != nil {
		return errs.NewCMSError("build query for", c.dataset, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.NewCMSError("build request for", c.dataset, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewCMSError("query", c.dataset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.NewCMSError("query", c.dataset,
			fmt.Errorf("content source returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errs.NewCMSError("decode response from", c.dataset, err)
	}

	// A query matching nothing yields a JSON null result; leave out untouched
	// so callers see their zero value.
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return errs.NewCMSError("decode result from", c.dataset, err)
	}
	return nil
}

func (c *Client) queryURL(query string, params map[string]string) (string, error) {
	base := c.baseURL
	if base == "" {
		host := "api.sanity.io"
		if c.useCDN {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", c.projectID, host)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u.Path = fmt.Sprintf("/v%s/data/query/%s", c.apiVersion, c.dataset)

	values := url.Values{}
	values.Set("query", query)
	values.Set("perspective", c.perspective)
	for name, value := range params {
		// GROQ parameters are JSON literals keyed by $name.
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		values.Set("$"+name, string(encoded))
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}
