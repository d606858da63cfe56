// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"
)

func newDefault() *Classifier {
	return New(DefaultTable())
}

// --- industry detection ---

func TestClassifyIndustry(t *testing.T) {
	c := newDefault()
	tests := []struct {
		name        string
		affiliation string
		company     string
	}{
		{"legal suffix", "Acme Therapeutics Inc., Cambridge, MA", "Acme Therapeutics"},
		{"gmbh", "CureVac GmbH, Tübingen", "CureVac"},
		{"suffix only segment", "Exelixis, Inc., Alameda, CA", "Exelixis"},
		{"keyword pharmaceuticals", "Vertex Pharmaceuticals, Boston", "Vertex Pharmaceuticals"},
		{"keyword therapeutics", "Arrow Therapeutics, London", "Arrow Therapeutics"},
		{"keyword biosciences", "Canopy Biosciences", "Canopy Biosciences"},
		{"known company no suffix", "Genentech, South San Francisco, CA, USA", "Genentech"},
		{"known company pfizer", "Pfizer Inc., New York, NY", "Pfizer"},
		{"mixed academic then company", "Dept of Oncology, Roche Pharmaceuticals, Basel", "Roche Pharmaceuticals"},
		{"company after university", "University of Basel; Novartis, Basel, Switzerland", "Novartis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.affiliation)
			if !got.Industry {
				t.Fatalf("Classify(%q).Industry = false, want true", tt.affiliation)
			}
			if !strings.Contains(got.Company, tt.company) {
				t.Errorf("Company = %q, want containing %q", got.Company, tt.company)
			}
		})
	}
}

func TestClassifyNonIndustry(t *testing.T) {
	c := newDefault()
	tests := []struct {
		name        string
		affiliation string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"numeric", "12345"},
		{"university", "Department of Biology, University of Cambridge, UK"},
		{"hospital", "Massachusetts General Hospital, Boston"},
		{"institute of technology", "Massachusetts Institute of Technology"},
		{"government", "National Institutes of Health, Bethesda, MD"},
		{"ministry", "Ministry of Health, Singapore"},
		{"country only", "Germany"},
		{"pharmacology is not pharma", "Department of Pharmacology, Yale School of Medicine"},
		{"pharmacy school", "School of Pharmacy, Ohio"},
		{"national laboratories", "Sandia National Laboratories, Albuquerque"},
		{"exclusion wins within segment", "National Biosciences Institute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.affiliation)
			if got.Industry {
				t.Errorf("Classify(%q).Industry = true, want false (company %q)", tt.affiliation, got.Company)
			}
			if got.Company != "" {
				t.Errorf("Company = %q, want empty for non-industry", got.Company)
			}
		})
	}
}

// An academic marker suppresses only its own segment; a later company
// segment still wins.
func TestClassifyMixedAffiliationAsymmetry(t *testing.T) {
	c := newDefault()

	got := c.Classify("Dept of Oncology, Roche Pharmaceuticals, Basel")
	if !got.Industry {
		t.Fatal("mixed academic/industry affiliation should classify as industry")
	}
	if !strings.Contains(got.Company, "Roche") {
		t.Errorf("Company = %q, want containing Roche", got.Company)
	}

	// The reverse order works the same way.
	got = c.Classify("Roche Pharmaceuticals, Basel; Dept of Oncology, University Hospital")
	if !got.Industry {
		t.Fatal("industry segment before academic segments should still win")
	}
}

// --- email extraction ---

func TestClassifyExtractsEmail(t *testing.T) {
	c := newDefault()
	tests := []struct {
		affiliation string
		email       string
	}{
		{"Pfizer Inc., New York. jane.doe@pfizer.com.", "jane.doe@pfizer.com"},
		{"University of Oslo, Norway. Electronic address: ola@uio.no.", "ola@uio.no"},
		{"No address here", ""},
	}
	for _, tt := range tests {
		got := c.Classify(tt.affiliation)
		if got.Email != tt.email {
			t.Errorf("Classify(%q).Email = %q, want %q", tt.affiliation, got.Email, tt.email)
		}
	}
}

func TestClassifyAcademicEmailStillExtracted(t *testing.T) {
	c := newDefault()
	got := c.Classify("Harvard Medical School, Boston. smith@hms.harvard.edu")
	if got.Industry {
		t.Error("academic affiliation should not classify as industry")
	}
	if got.Email != "smith@hms.harvard.edu" {
		t.Errorf("Email = %q, extraction should not depend on classification", got.Email)
	}
}

// --- corporate email domain secondary signal ---

func TestClassifyCorporateEmailDomain(t *testing.T) {
	c := newDefault()

	got := c.Classify("jane.doe@pfizer.com")
	if !got.Industry {
		t.Fatal("known corporate email domain should classify as industry")
	}
	if got.Company != "Pfizer" {
		t.Errorf("Company = %q, want Pfizer from domain table", got.Company)
	}

	// Subdomains of a known domain count too.
	got = c.Classify("a.b@research.roche.com")
	if !got.Industry || got.Company != "Roche" {
		t.Errorf("subdomain match: Industry=%v Company=%q, want true/Roche", got.Industry, got.Company)
	}

	// Unknown domains carry no signal.
	got = c.Classify("someone@example.org")
	if got.Industry {
		t.Error("unknown email domain alone should not classify as industry")
	}
}

// --- determinism ---

func TestClassifyDeterministic(t *testing.T) {
	c := newDefault()
	inputs := []string{
		"Dept of Oncology, Roche Pharmaceuticals, Basel",
		"University of Cambridge",
		"jane@modernatx.com",
		"Acme Biotech Ltd.; Hospital of St. John",
	}
	for _, in := range inputs {
		first := c.Classify(in)
		for i := 0; i < 10; i++ {
			if got := c.Classify(in); got != first {
				t.Fatalf("Classify(%q) not deterministic: %+v then %+v", in, first, got)
			}
		}
	}
}

// --- company name cleanup ---

func TestCleanCompanyTrimsSuffixes(t *testing.T) {
	c := newDefault()
	tests := []struct {
		in   string
		want string
	}{
		{"Pfizer Inc.", "Pfizer"},
		{"Moderna Inc", "Moderna"},
		{"Boehringer Ingelheim GmbH", "Boehringer Ingelheim"},
		{"Novartis AG", "Novartis"},
		{"Vertex Pharmaceuticals", "Vertex Pharmaceuticals"},
	}
	for _, tt := range tests {
		if got := c.cleanCompany(tt.in); got != tt.want {
			t.Errorf("cleanCompany(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// --- table overlay ---

func TestNewWithCustomTable(t *testing.T) {
	table := Table{
		AcademicMarkers: []string{"university"},
		LegalSuffixes:   []string{"inc"},
		Companies:       []string{"tiny biotech startup"},
	}
	c := New(table)

	if got := c.Classify("Tiny Biotech Startup, Somewhere"); !got.Industry {
		t.Error("custom company list entry should classify as industry")
	}
	// Default-table entries are absent from the custom table.
	if got := c.Classify("Vertex Pharmaceuticals"); got.Industry {
		t.Error("keyword not in custom table should not classify as industry")
	}
}

func TestSplitSegments(t *testing.T) {
	got := splitSegments("A, B; C\nD,, E")
	want := []string{"A", "B", "C", "D", "E"}
	if len(got) != len(want) {
		t.Fatalf("splitSegments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}
