// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// parseArticleSet decodes an EFetch PubmedArticleSet. Parsing is
// defensive: a record missing title, date, or authors yields a degraded
// Paper; a record with no PMID is skipped with a warning. Only a document
// that cannot be decoded at all is an error.
func parseArticleSet(body []byte) ([]types.Paper, []string, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, nil, fmt.Errorf("parsing EFetch response: %w", err)
	}

	var papers []types.Paper
	var warnings []string
	for i, article := range set.Articles {
		pmid := strings.TrimSpace(article.PMID)
		if pmid == "" {
			warnings = append(warnings, fmt.Sprintf("skipping record %d: missing PMID", i))
			continue
		}

		p := types.Paper{
			ID:       pmid,
			Title:    strings.TrimSpace(article.Article.Title),
			Date:     parsePubDate(article.Article),
			Abstract: strings.TrimSpace(strings.Join(article.Article.Abstract, " ")),
		}
		for _, a := range article.Article.Authors {
			author, ok := parseAuthor(a)
			if !ok {
				continue
			}
			p.Authors = append(p.Authors, author)
		}
		papers = append(papers, p)
	}
	return papers, warnings, nil
}

// parseAuthor converts one XML author entry. Entries with neither a last
// name nor a collective name carry no usable identity and are dropped.
func parseAuthor(a authorXML) (types.Author, bool) {
	name := strings.TrimSpace(a.CollectiveName)
	if last := strings.TrimSpace(a.LastName); last != "" {
		name = strings.TrimSpace(strings.TrimSpace(a.ForeName) + " " + last)
	}
	if name == "" {
		return types.Author{}, false
	}

	affiliation := strings.TrimSpace(strings.Join(a.Affiliations, "; "))
	return types.Author{
		Name:            name,
		Affiliation:     affiliation,
		IsCorresponding: strings.Contains(strings.ToLower(affiliation), "corresponding"),
	}, true
}

// monthNames maps PubMed month abbreviations to month numbers.
var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// parsePubDate extracts the most precise publication date available,
// preferring the journal issue date, then the electronic article date.
// A MedlineDate range (e.g. "2022 Nov-Dec") contributes its year only.
func parsePubDate(a articleXML) types.PubDate {
	for _, d := range []pubDateXML{a.Journal.PubDate, a.ArticleDate} {
		if date := convertDate(d); !date.IsZero() {
			return date
		}
	}
	return types.PubDate{}
}

func convertDate(d pubDateXML) types.PubDate {
	year, err := strconv.Atoi(strings.TrimSpace(d.Year))
	if err != nil {
		return medlineYear(d.MedlineDate)
	}

	date := types.PubDate{Year: year}
	month := strings.TrimSpace(d.Month)
	if m, ok := monthNames[strings.ToLower(month)]; ok {
		date.Month = m
	} else if m, err := strconv.Atoi(month); err == nil && m >= 1 && m <= 12 {
		date.Month = m
	}
	if date.Month != 0 {
		if day, err := strconv.Atoi(strings.TrimSpace(d.Day)); err == nil && day >= 1 && day <= 31 {
			date.Day = day
		}
	}
	return date
}

// medlineYear pulls a four-digit year out of a free-form MedlineDate.
func medlineYear(s string) types.PubDate {
	for _, field := range strings.Fields(s) {
		if len(field) == 4 {
			if year, err := strconv.Atoi(field); err == nil && year > 1000 {
				return types.PubDate{Year: year}
			}
		}
	}
	return types.PubDate{}
}

// EFetch XML structures (PubmedArticleSet subset).
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string     `xml:"MedlineCitation>PMID"`
	Article articleXML `xml:"MedlineCitation>Article"`
}

type articleXML struct {
	Title       string      `xml:"ArticleTitle"`
	Abstract    []string    `xml:"Abstract>AbstractText"`
	Journal     journalXML  `xml:"Journal"`
	ArticleDate pubDateXML  `xml:"ArticleDate"`
	Authors     []authorXML `xml:"AuthorList>Author"`
}

type journalXML struct {
	PubDate pubDateXML `xml:"JournalIssue>PubDate"`
}

type pubDateXML struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type authorXML struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}
