// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// Format writes records to w in the given output format.
func Format(records []types.ResultRecord, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.OutputTable, "":
		FormatTable(records, w)
		return nil
	case types.OutputJSON:
		return FormatJSON(records, w)
	case types.OutputYAML:
		return FormatYAML(records, w)
	case types.OutputCSL:
		return FormatCSL(records, w)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml or csl", format)
	}
}

// FormatTable writes records as a human-readable table to w. Whitespace in
// the text fields is collapsed for display only.
func FormatTable(records []types.ResultRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-40s  %s\n", "#", "Title", "Authors", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range records {
		fmt.Fprintf(w, "%-4d  %-60s  %-40s  %s\n",
			i+1, truncate(collapse(r.Title), 60), truncate(collapse(r.Author), 40), r.Link)
	}

	fmt.Fprintf(w, "\n%d results\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.ResultRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FormatYAML writes records as a YAML list to w.
func FormatYAML(records []types.ResultRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(records)
}

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers. The author line is not parsed; it is kept whole as
// the container title.
type CSLItem struct {
	ID             string `yaml:"id"`
	Type           string `yaml:"type"`
	Title          string `yaml:"title"`
	ContainerTitle string `yaml:"container-title,omitempty"`
	Abstract       string `yaml:"abstract,omitempty"`
	URL            string `yaml:"URL,omitempty"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.ResultRecord, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(i, r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(i int, r types.ResultRecord) CSLItem {
	return CSLItem{
		ID:             fmt.Sprintf("scholar-%d", i+1),
		Type:           "article-journal",
		Title:          collapse(r.Title),
		ContainerTitle: collapse(r.Author),
		Abstract:       collapse(r.Summary),
		URL:            r.Link,
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
