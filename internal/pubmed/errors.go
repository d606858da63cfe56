// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import "fmt"

// SearchError reports a failed ESearch request after retries were
// exhausted. StatusCode is zero when the failure was not an HTTP status
// (transport error, malformed response).
type SearchError struct {
	Query      string
	StatusCode int
	Err        error
}

func (e *SearchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pubmed search %q: HTTP %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("pubmed search %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// FetchError reports an EFetch chunk that failed after retries were
// exhausted. IDs lists the identifiers in the failed chunk; records from
// chunks that succeeded before the failure are still returned alongside
// the error.
type FetchError struct {
	IDs        []string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pubmed fetch of %d ids: HTTP %d", len(e.IDs), e.StatusCode)
	}
	return fmt.Sprintf("pubmed fetch of %d ids: %v", len(e.IDs), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
