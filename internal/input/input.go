// Package input collects video IDs from the supported input sources:
// comma-separated command-line values, the "Video Id" column of a CSV
// export, and a YAML manifest. The sync engine depends on nothing here but
// the resulting ID slice.
package input

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/clipnote/clipnote/pkg/errors"
)

// csvIDColumn is the header of the column video IDs are read from, matching
// the column name the Notion CSV export uses.
const csvIDColumn = "Video Id"

// Manifest is the YAML manifest shape: a named list of video IDs.
type Manifest struct {
	Videos []string `yaml:"videos"`
}

// FromArgs splits a comma-separated ID list, trimming whitespace and
// dropping empties and duplicates.
func FromArgs(value string) []string {
	var ids []string
	for _, id := range strings.Split(value, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return Dedupe(ids)
}

// FromCSV reads video IDs from the named column of a CSV file.
func FromCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewConfigError("input", "cannot open CSV file "+path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	column := -1
	for i, name := range header {
		if strings.TrimSpace(name) == csvIDColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, errors.NewParseError("csv", path, "missing required column "+csvIDColumn, nil)
	}

	var ids []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		if id := strings.TrimSpace(row[column]); id != "" {
			ids = append(ids, id)
		}
	}
	return Dedupe(ids), nil
}

// FromManifest reads video IDs from a YAML manifest file.
func FromManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("input", "cannot read manifest "+path, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	var ids []string
	for _, id := range manifest.Videos {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return Dedupe(ids), nil
}

// Dedupe removes duplicate IDs while preserving first-seen order.
func Dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
