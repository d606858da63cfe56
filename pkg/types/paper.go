// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline.
package types

import "fmt"

// PubDate is a publication date at whatever precision the source supplied.
// A zero Month or Day means that component is unknown.
type PubDate struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month,omitempty" yaml:"month,omitempty"`
	Day   int `json:"day,omitempty" yaml:"day,omitempty"`
}

// IsZero reports whether no date component is known.
func (d PubDate) IsZero() bool { return d.Year == 0 }

// String formats the date at its best available precision: "2023",
// "2023-06", or "2023-06-12". Unknown dates format as the empty string.
func (d PubDate) String() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Author is one author entry on a paper as returned by the source, plus
// the classification results filled in by the pipeline.
type Author struct {
	// Name is the author's display name ("First Last"); may be empty.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the raw affiliation text from the source. It may be
	// empty or join several institutions with semicolons or commas.
	Affiliation string `json:"affiliation" yaml:"affiliation"`

	// Email is extracted from the affiliation text when one is embedded.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// IsCorresponding is set when the affiliation text marks the author
	// as the corresponding author.
	IsCorresponding bool `json:"is_corresponding,omitempty" yaml:"is_corresponding,omitempty"`

	// IsIndustry is never supplied by the source; the classifier sets it.
	IsIndustry bool `json:"is_industry" yaml:"is_industry"`

	// Company is the extracted organization name, set only when
	// IsIndustry is true.
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
}

// Paper holds one retrieved publication with its author list.
type Paper struct {
	// ID is the source identifier (PubMed ID), stable across calls.
	ID string `json:"id" yaml:"id"`

	// Title is the article title; empty when the source omits it.
	Title string `json:"title" yaml:"title"`

	// Date is the publication date at best available precision.
	Date PubDate `json:"date" yaml:"date"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Abstract is the article abstract when the source provides one.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// HasIndustryAuthor reports whether at least one author classified as
// industry-affiliated. Papers without one are dropped from the output.
func (p Paper) HasIndustryAuthor() bool {
	for _, a := range p.Authors {
		if a.IsIndustry {
			return true
		}
	}
	return false
}

// Record is one shaped output row for a paper that passed the industry
// filter. Field order matches the CSV column order.
type Record struct {
	PubmedID            string `json:"pubmed_id"`
	Title               string `json:"title"`
	PublicationDate     string `json:"publication_date"`
	NonAcademicAuthors  string `json:"non_academic_authors"`
	CompanyAffiliations string `json:"company_affiliations"`
	CorrespondingEmail  string `json:"corresponding_author_email"`
}
