// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author affiliation string denotes
// an industry (pharma/biotech) organization rather than an academic,
// governmental, or clinical one, and extracts a best-effort company name
// and embedded email address.
package classify

import (
	"regexp"
	"sort"
	"strings"
)

// emailRe matches an embedded local-part@domain address.
var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Result is the outcome of classifying one affiliation string.
type Result struct {
	// Industry is true only on a positive signal; absence of evidence
	// always classifies as non-industry.
	Industry bool

	// Company is the extracted organization name, set only when Industry
	// is true.
	Company string

	// Email is an address embedded in the affiliation text, extracted
	// regardless of the classification outcome.
	Email string
}

// Classifier applies a fixed Table to affiliation strings. Classification
// is deterministic and pure: no external lookups, no randomness.
type Classifier struct {
	table     Table
	countries map[string]bool
	suffixes  map[string]bool
	domains   []string // sorted for deterministic iteration
}

// New builds a Classifier from a table, normalizing entries to lowercase.
func New(table Table) *Classifier {
	c := &Classifier{
		table:     table,
		countries: make(map[string]bool, len(table.Countries)),
		suffixes:  make(map[string]bool, len(table.LegalSuffixes)),
	}
	c.table.AcademicMarkers = lower(table.AcademicMarkers)
	c.table.Keywords = lower(table.Keywords)
	c.table.Companies = lower(table.Companies)
	for _, s := range table.LegalSuffixes {
		c.suffixes[strings.ToLower(s)] = true
	}
	for _, s := range table.Countries {
		c.countries[strings.ToLower(s)] = true
	}
	for d := range table.EmailDomains {
		c.domains = append(c.domains, strings.ToLower(d))
	}
	sort.Strings(c.domains)
	return c
}

// Classify evaluates one raw affiliation string. The string is split on
// weak delimiters (semicolon, comma, newline) into segments, each judged
// independently; the whole string is kept as a final candidate because
// institution names sometimes span a comma. An academic marker suppresses
// only its own segment, so a mixed "Dept of Oncology, Roche
// Pharmaceuticals" still classifies as industry.
func (c *Classifier) Classify(text string) Result {
	result := Result{Email: extractEmail(text)}

	// Segments are judged with addresses removed so an embedded email
	// never masquerades as an organization name; the domain is weighed
	// separately below.
	text = strings.TrimSpace(emailRe.ReplaceAllString(text, " "))
	if text != "" {
		segments := splitSegments(text)
		segments = append(segments, strings.TrimSpace(text))

		for i, segment := range segments {
			if company, ok := c.classifySegment(segment); ok {
				if company == "" {
					// Suffix-only segment such as "Inc." names no
					// organization; the preceding segment does.
					company = precedingName(segments, i)
				}
				if company == "" {
					company = segment
				}
				result.Industry = true
				result.Company = company
				return result
			}
		}
	}

	// Secondary signal: a bare corporate email address.
	if result.Email != "" {
		domain := strings.ToLower(result.Email[strings.Index(result.Email, "@")+1:])
		for _, d := range c.domains {
			if domain == d || strings.HasSuffix(domain, "."+d) {
				result.Industry = true
				result.Company = c.table.EmailDomains[d]
				return result
			}
		}
	}
	return result
}

// classifySegment reports whether one segment carries an industry signal
// and, if so, the cleaned company name (possibly empty for suffix-only
// segments). Exclusion is checked first and wins within the segment.
func (c *Classifier) classifySegment(segment string) (string, bool) {
	seg := strings.ToLower(strings.TrimSpace(segment))
	if seg == "" {
		return "", false
	}
	if c.countries[strings.Trim(seg, ".")] {
		return "", false
	}
	for _, marker := range c.table.AcademicMarkers {
		if strings.Contains(seg, marker) {
			return "", false
		}
	}

	tokens := strings.Fields(seg)
	for _, token := range tokens {
		if c.suffixes[strings.Trim(token, ",")] {
			return c.cleanCompany(segment), true
		}
	}

	// Keywords match whole words only, so "Pharmacology" and "Pharmacy"
	// do not trip "pharma".
	for i, token := range tokens {
		word := strings.Trim(token, ".,()")
		for _, kw := range c.table.Keywords {
			if word != kw {
				continue
			}
			if kw == "laboratories" && hasAcademicQualifier(tokens, i) {
				continue
			}
			return c.cleanCompany(segment), true
		}
	}

	for _, company := range c.table.Companies {
		if strings.Contains(seg, company) {
			return c.cleanCompany(segment), true
		}
	}
	return "", false
}

// cleanCompany trims trailing legal-suffix noise and punctuation from a
// matched segment. When nothing but suffix tokens remain the empty string
// is returned and the caller falls back to neighboring text.
func (c *Classifier) cleanCompany(segment string) string {
	tokens := strings.Fields(strings.TrimSpace(segment))
	for len(tokens) > 0 {
		last := strings.ToLower(strings.Trim(tokens[len(tokens)-1], ","))
		if !c.suffixes[last] {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Trim(strings.Join(tokens, " "), " ,.")
}

// precedingName returns the nearest earlier segment that names something,
// for attaching a suffix-only segment like "Inc." to its company.
func precedingName(segments []string, i int) string {
	for j := i - 1; j >= 0; j-- {
		if s := strings.Trim(strings.TrimSpace(segments[j]), " ,."); s != "" {
			return s
		}
	}
	return ""
}

// hasAcademicQualifier reports whether the token at i is directly
// preceded by "national" or "university", as in "National Laboratories".
func hasAcademicQualifier(tokens []string, i int) bool {
	if i == 0 {
		return false
	}
	prev := strings.Trim(tokens[i-1], ".,()")
	return prev == "national" || prev == "university"
}

// splitSegments breaks an affiliation string on weak delimiters.
func splitSegments(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n'
	})
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// extractEmail returns the first embedded email address, stripped of
// trailing sentence punctuation.
func extractEmail(text string) string {
	return strings.TrimRight(emailRe.FindString(text), ".")
}

func lower(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
