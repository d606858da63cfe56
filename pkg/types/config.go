// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for clients that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the PubMed E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is sent as the "email" parameter for API identification.
	// NCBI recommends it; presence affects rate limits, never content.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// PageSize is the number of identifiers requested per ESearch page
	// (default 100).
	PageSize int `json:"page_size" yaml:"page_size"`

	// FetchBatchSize is the number of identifiers per EFetch request
	// (default 20).
	FetchBatchSize int `json:"fetch_batch_size" yaml:"fetch_batch_size"`

	// MaxRetries is the number of retry attempts for transient HTTP
	// failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ClassifyConfig holds settings for the affiliation classifier.
type ClassifyConfig struct {
	// CompaniesFile is an optional YAML overlay merged over the built-in
	// classification table (extra companies, keywords, domains).
	CompaniesFile string `json:"companies_file,omitempty" yaml:"companies_file,omitempty"`
}

// FetcherConfig groups the component configurations for the pipeline.
type FetcherConfig struct {
	PubMed   PubMedConfig   `json:"pubmed" yaml:"pubmed"`
	Classify ClassifyConfig `json:"classify" yaml:"classify"`

	// MaxResults is the default cap on retrieved papers (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
