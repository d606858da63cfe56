// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes shaped paper records as CSV or JSON.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// header is the CSV column order consumed by downstream analysts.
var header = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes records to w with the standard header row. An empty
// record list still produces the header, so consumers always see the
// column shape.
func WriteCSV(records []types.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PubmedID,
			r.Title,
			r.PublicationDate,
			r.NonAcademicAuthors,
			r.CompanyAffiliations,
			r.CorrespondingEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to a file, creating parent directories.
func SaveCSV(records []types.Record, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteCSV(records, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteJSON writes records as indented JSON to w.
func WriteJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
