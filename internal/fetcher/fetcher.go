// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetcher composes the PubMed client and the affiliation
// classifier into the full pipeline: search, fetch, classify, filter to
// papers with at least one industry-affiliated author, and shape output
// rows.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/internal/pubmed"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Client is the slice of the PubMed client the pipeline needs. Tests
// substitute a mock.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
	Fetch(ctx context.Context, ids []string) (pubmed.FetchOutput, error)
}

// Fetcher runs the retrieval and classification pipeline.
type Fetcher struct {
	client     Client
	classifier *classify.Classifier
}

// New builds a Fetcher from configuration, loading the classification
// table (with any configured overlay file) once up front.
func New(cfg types.FetcherConfig) (*Fetcher, error) {
	table, err := classify.LoadTable(cfg.Classify.CompaniesFile)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		client:     pubmed.NewClient(cfg.PubMed),
		classifier: classify.New(table),
	}, nil
}

// NewWith builds a Fetcher from already-constructed collaborators, for
// tests and callers that manage their own table.
func NewWith(client Client, classifier *classify.Classifier) *Fetcher {
	return &Fetcher{client: client, classifier: classifier}
}

// FetchPapers retrieves up to maxResults papers matching query and
// returns shaped rows for those with at least one industry-affiliated
// author. Zero matches is a valid empty result, not an error. Progress
// and parse warnings are written to w.
//
// When a fetch batch fails after retries, rows shaped from the batches
// that succeeded are returned alongside the error so the caller can keep
// the partial output.
func (f *Fetcher) FetchPapers(ctx context.Context, query string, maxResults int, w io.Writer) ([]types.Record, error) {
	fmt.Fprintf(w, "searching PubMed: %s\n", query)
	ids, err := f.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "no papers found for the given query")
		return nil, nil
	}
	fmt.Fprintf(w, "found %d papers, fetching details\n", len(ids))

	out, fetchErr := f.client.Fetch(ctx, ids)
	for _, warning := range out.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	if fetchErr != nil && len(out.Papers) > 0 {
		fmt.Fprintf(w, "warning: keeping %d papers fetched before failure: %v\n", len(out.Papers), fetchErr)
	}

	var records []types.Record
	for _, paper := range out.Papers {
		f.classifyAuthors(&paper)
		if !paper.HasIndustryAuthor() {
			continue
		}
		records = append(records, shape(paper))
	}
	fmt.Fprintf(w, "%d of %d papers have industry-affiliated authors\n", len(records), len(out.Papers))
	return records, fetchErr
}

// classifyAuthors runs the classifier over every author's raw affiliation
// and writes the results back onto the author records.
func (f *Fetcher) classifyAuthors(paper *types.Paper) {
	for i := range paper.Authors {
		r := f.classifier.Classify(paper.Authors[i].Affiliation)
		paper.Authors[i].IsIndustry = r.Industry
		paper.Authors[i].Company = r.Company
		if paper.Authors[i].Email == "" {
			paper.Authors[i].Email = r.Email
		}
	}
}

// shape flattens a classified paper into one output row: the names of
// industry-affiliated authors, their companies deduplicated in order of
// first appearance, and the best corresponding email.
func shape(paper types.Paper) types.Record {
	var names []string
	var companies []string
	seen := make(map[string]bool)
	for _, a := range paper.Authors {
		if !a.IsIndustry {
			continue
		}
		names = append(names, a.Name)
		if a.Company != "" && !seen[a.Company] {
			seen[a.Company] = true
			companies = append(companies, a.Company)
		}
	}

	return types.Record{
		PubmedID:            paper.ID,
		Title:               paper.Title,
		PublicationDate:     paper.Date.String(),
		NonAcademicAuthors:  strings.Join(names, "; "),
		CompanyAffiliations: strings.Join(companies, "; "),
		CorrespondingEmail:  bestEmail(paper.Authors),
	}
}

// bestEmail picks the paper's contact address: a corresponding
// industry author's email first, then any industry author's, then any
// corresponding author's, then any author's.
func bestEmail(authors []types.Author) string {
	pick := func(want func(types.Author) bool) string {
		for _, a := range authors {
			if a.Email != "" && want(a) {
				return a.Email
			}
		}
		return ""
	}

	if e := pick(func(a types.Author) bool { return a.IsIndustry && a.IsCorresponding }); e != "" {
		return e
	}
	if e := pick(func(a types.Author) bool { return a.IsIndustry }); e != "" {
		return e
	}
	if e := pick(func(a types.Author) bool { return a.IsCorresponding }); e != "" {
		return e
	}
	return pick(func(types.Author) bool { return true })
}
