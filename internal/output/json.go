// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output writes machine-readable command results.
//
// Two layouts are supported: a single indented document for --json, and
// JSON Lines (one compact document per line) for streaming batch results
// into tools like jq or a log shipper. Human-readable rendering lives in
// the ui package; errors are rendered by the errors package.
//
//	m, _ := sigparse.ParseFunction("private void log(String value)")
//	_ = output.JSONTo(os.Stdout, m)
//
//	_ = output.JSONLines(os.Stdout, report.Results)
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONTo writes data to w as one JSON document indented with two spaces.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// JSONLines writes each item to w as a compact document on its own line.
// On failure it reports the index of the item that could not be encoded;
// earlier lines have already been written.
func JSONLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encode json line %d: %w", i+1, err)
		}
	}
	return nil
}
