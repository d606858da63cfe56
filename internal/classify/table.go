// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Table is the immutable configuration data the classifier runs on. It is
// built once at startup and passed in explicitly so tests can substitute
// their own entries.
type Table struct {
	// AcademicMarkers mark a segment as academic/government/clinical.
	// A marker only suppresses the segment it appears in.
	AcademicMarkers []string `yaml:"academic_markers"`

	// LegalSuffixes are company legal-entity tokens ("inc", "gmbh").
	// Matched per token, case-insensitively.
	LegalSuffixes []string `yaml:"legal_suffixes"`

	// Keywords are pharma/biotech domain words matched as whole tokens.
	Keywords []string `yaml:"keywords"`

	// Companies is the curated known-company list, lowercase.
	Companies []string `yaml:"companies"`

	// EmailDomains maps corporate email domain suffixes to company names,
	// a secondary signal for affiliations that carry only an address.
	EmailDomains map[string]string `yaml:"email_domains"`

	// Countries are names that, alone, classify a segment as non-industry.
	Countries []string `yaml:"countries"`
}

// DefaultTable returns the built-in classification table.
func DefaultTable() Table {
	return Table{
		AcademicMarkers: []string{
			"university", "college", "school", "institute", "institution",
			"academy", "hospital", "medical center", "medical centre",
			"health system", "clinic", "department of", "dept of", "dept.",
			"faculty", "division of", "center for", "centre for",
			"ministry", "national institutes of health", "government",
			"public health", "veterans affairs", "va medical",
		},
		LegalSuffixes: []string{
			"inc", "inc.", "ltd", "ltd.", "llc", "gmbh",
			"corp", "corp.", "corporation", "co.", "ag", "s.a.", "pty",
		},
		Keywords: []string{
			"pharmaceuticals", "pharmaceutical", "pharma",
			"biotechnology", "biotech", "biopharma", "biopharmaceuticals",
			"therapeutics", "biosciences", "laboratories",
		},
		Companies: []string{
			// Major pharmaceutical companies.
			"pfizer", "johnson & johnson", "roche", "novartis", "merck",
			"sanofi", "glaxosmithkline", "gsk", "astrazeneca",
			"bristol myers squibb", "abbott", "eli lilly", "amgen",
			"gilead", "biogen", "celgene", "regeneron", "vertex",
			"moderna", "biontech", "boehringer ingelheim", "abbvie",
			"takeda", "bayer", "novo nordisk",

			// Biotech companies.
			"genentech", "immunogen", "seagen", "bluebird bio",
			"crispr therapeutics", "editas medicine", "intellia therapeutics",
			"sangamo therapeutics", "alnylam", "ionis pharmaceuticals",
			"sarepta therapeutics", "biomarin", "alexion", "ultragenyx",
			"jazz pharmaceuticals", "neurocrine biosciences",
			"sage therapeutics", "illumina", "thermo fisher",

			// Generics and specialty pharma.
			"teva", "mylan", "viatris", "sandoz", "hikma", "sun pharma",
			"cipla", "lupin", "aurobindo", "glenmark", "dr reddy",

			// CROs and service providers.
			"iqvia", "covance", "parexel", "syneos health", "icon plc",
			"charles river laboratories", "wuxi apptec", "catalent",
			"lonza", "samsung biologics", "labcorp",
		},
		EmailDomains: map[string]string{
			"pfizer.com":      "Pfizer",
			"roche.com":       "Roche",
			"novartis.com":    "Novartis",
			"merck.com":       "Merck",
			"gsk.com":         "GSK",
			"astrazeneca.com": "AstraZeneca",
			"gene.com":        "Genentech",
			"amgen.com":       "Amgen",
			"gilead.com":      "Gilead",
			"modernatx.com":   "Moderna",
			"lilly.com":       "Eli Lilly",
			"sanofi.com":      "Sanofi",
			"abbvie.com":      "AbbVie",
			"biogen.com":      "Biogen",
			"takeda.com":      "Takeda",
			"bayer.com":       "Bayer",
		},
		Countries: []string{
			"usa", "united states", "united states of america", "uk",
			"united kingdom", "germany", "france", "switzerland", "italy",
			"spain", "netherlands", "belgium", "sweden", "denmark",
			"norway", "finland", "austria", "ireland", "canada", "mexico",
			"brazil", "argentina", "china", "japan", "south korea",
			"india", "australia", "new zealand", "israel", "singapore",
			"russia", "poland", "czech republic", "portugal", "greece",
		},
	}
}

// overlay is the YAML shape of a user-supplied table extension.
type overlay struct {
	Companies    []string          `yaml:"companies"`
	Keywords     []string          `yaml:"keywords"`
	EmailDomains map[string]string `yaml:"email_domains"`
}

// LoadTable returns the default table merged with the overlay file at
// path. An empty path returns the default table unchanged.
func LoadTable(path string) (Table, error) {
	table := DefaultTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading companies file: %w", err)
	}
	var ov overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return Table{}, fmt.Errorf("parsing companies file %s: %w", path, err)
	}

	table.Companies = append(table.Companies, lower(ov.Companies)...)
	table.Keywords = append(table.Keywords, lower(ov.Keywords)...)
	for domain, name := range ov.EmailDomains {
		table.EmailDomains[domain] = name
	}
	return table, nil
}
