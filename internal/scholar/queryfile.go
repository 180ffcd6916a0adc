// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// QueryFile is the on-disk representation of a query and, optionally, the
// results it produced. A file holding only the query section is a valid
// input for re-running a search.
type QueryFile struct {
	Query   QuerySpec            `yaml:"query"`
	URL     string               `yaml:"url,omitempty"`
	Results []types.ResultRecord `yaml:"results,omitempty"`
	Summary *QuerySummary        `yaml:"summary,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves spec, its canonical URL and records to a YAML file.
func WriteQueryFile(path string, spec QuerySpec, url string, records []types.ResultRecord) error {
	qf := QueryFile{
		Query:   spec,
		URL:     url,
		Results: records,
		Summary: &QuerySummary{
			Total:     len(records),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file %s: %w", path, err)
	}
	return &qf, nil
}
