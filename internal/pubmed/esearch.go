// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/pharma-papers/internal/httputil"
)

// Search resolves a query to an ordered list of PubMed IDs. The query is
// passed through to ESearch unmodified; full PubMed boolean/field-tag
// syntax is the service's concern. Search pages through results until
// maxResults identifiers are collected or the service reports no more,
// whichever comes first. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = defaultPageSize
	}

	var ids []string
	for retstart := 0; len(ids) < maxResults; {
		retmax := c.cfg.PageSize
		if remaining := maxResults - len(ids); remaining < retmax {
			retmax = remaining
		}

		page, count, err := c.searchPage(ctx, query, retstart, retmax)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		ids = append(ids, page...)
		retstart += len(page)
		if retstart >= count {
			break
		}
	}
	return ids, nil
}

// searchPage issues one ESearch request and returns the page of IDs plus
// the service's total-count hint.
func (c *Client) searchPage(ctx context.Context, query string, retstart, retmax int) ([]string, int, error) {
	params := url.Values{
		"db":       {"pubmed"},
		"term":     {query},
		"retstart": {fmt.Sprintf("%d", retstart)},
		"retmax":   {fmt.Sprintf("%d", retmax)},
		"retmode":  {"xml"},
	}
	c.identify(params)

	reqURL := esearchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, &SearchError{Query: query, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, &SearchError{Query: query, Err: err}
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, 0, &SearchError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, &SearchError{Query: query, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("ESearch returned HTTP %d", resp.StatusCode)}
	}

	var result esearchResult
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, &SearchError{Query: query, Err: fmt.Errorf("parsing ESearch response: %w", err)}
	}

	return result.IDs, result.Count, nil
}

// ESearch XML structure.
type esearchResult struct {
	Count int      `xml:"Count"`
	IDs   []string `xml:"IdList>Id"`
}
