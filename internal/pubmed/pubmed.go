// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API: ESearch resolves a
// query string to PubMed identifiers, EFetch retrieves full article
// records for batches of identifiers.
package pubmed

import (
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// toolName is sent as the "tool" identification parameter per NCBI policy.
const toolName = "pharma-papers"

const (
	defaultPageSize       = 100
	defaultFetchBatchSize = 20
)

// NCBI allows 3 requests per second without an API key, 10 with one.
const (
	keylessRate = 3
	keyedRate   = 10
)

// Client talks to the PubMed E-utilities. All requests are rate-limited
// client-side and carry the configured identification parameters.
type Client struct {
	HTTP    *http.Client
	cfg     types.PubMedConfig
	limiter *rate.Limiter
}

// NewClient builds a Client from configuration. A nil HTTP client falls
// back to http.DefaultClient with the configured timeout.
func NewClient(cfg types.PubMedConfig) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.FetchBatchSize <= 0 {
		cfg.FetchBatchSize = defaultFetchBatchSize
	}

	rps := rate.Limit(keylessRate)
	if cfg.APIKey != "" {
		rps = rate.Limit(keyedRate)
	}

	return &Client{
		HTTP:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rps, 1),
	}
}

// identify attaches the tool, email, and API key parameters. Their
// presence only affects NCBI rate limits, never result content.
func (c *Client) identify(params url.Values) {
	params.Set("tool", toolName)
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
}
