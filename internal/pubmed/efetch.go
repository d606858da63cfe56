// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/pharma-papers/internal/httputil"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// FetchOutput holds retrieved papers and any non-fatal parse warnings.
type FetchOutput struct {
	Papers   []types.Paper
	Warnings []string
}

// Fetch retrieves full records for ids in EFetch batches, preserving the
// input order across batch boundaries. Affiliations are returned raw; the
// classifier fills in the industry fields later.
//
// A malformed record degrades or is skipped with a recorded warning; it
// never drops its batch siblings. When a whole batch request fails after
// retries, Fetch returns the papers accumulated from earlier batches
// together with a *FetchError for the failed batch.
func (c *Client) Fetch(ctx context.Context, ids []string) (FetchOutput, error) {
	var out FetchOutput
	if len(ids) == 0 {
		return out, nil
	}

	for start := 0; start < len(ids); start += c.cfg.FetchBatchSize {
		end := start + c.cfg.FetchBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		papers, warnings, err := c.fetchBatch(ctx, batch)
		if err != nil {
			return out, err
		}
		out.Papers = append(out.Papers, papers...)
		out.Warnings = append(out.Warnings, warnings...)
	}
	return out, nil
}

// fetchBatch issues one EFetch request and parses the article set. The
// returned papers follow the requested id order.
func (c *Client) fetchBatch(ctx context.Context, ids []string) ([]types.Paper, []string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	c.identify(params)

	reqURL := efetchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, &FetchError{IDs: ids, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, &FetchError{IDs: ids, Err: err}
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, nil, &FetchError{IDs: ids, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &FetchError{IDs: ids, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("EFetch returned HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &FetchError{IDs: ids, Err: fmt.Errorf("reading EFetch response: %w", err)}
	}

	papers, warnings, err := parseArticleSet(body)
	if err != nil {
		return nil, nil, &FetchError{IDs: ids, Err: err}
	}
	return reorder(papers, ids), warnings, nil
}

// reorder arranges parsed papers to follow the requested id order.
// Papers whose PMID was not in the request keep their returned order at
// the end; requested ids with no record are simply absent.
func reorder(papers []types.Paper, ids []string) []types.Paper {
	byID := make(map[string]int, len(papers))
	for i, p := range papers {
		byID[p.ID] = i
	}

	ordered := make([]types.Paper, 0, len(papers))
	taken := make(map[int]bool, len(papers))
	for _, id := range ids {
		if i, ok := byID[id]; ok && !taken[i] {
			ordered = append(ordered, papers[i])
			taken[i] = true
		}
	}
	for i, p := range papers {
		if !taken[i] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
