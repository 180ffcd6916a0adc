// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar turns a QuerySpec into a Google Scholar request URL and
// turns the returned results page into ordered ResultRecords.
package scholar

import (
	"net/url"
	"strconv"
	"strings"
)

// Service identifies a supported search front end. Each service carries its
// own base URL; adding one means adding a case to BaseURL.
type Service int

const (
	ServiceScholar Service = iota
)

func (s Service) String() string {
	switch s {
	case ServiceScholar:
		return "scholar"
	default:
		return "unknown"
	}
}

// BaseURL returns the request prefix for s, ending in "?".
func BaseURL(s Service) (string, error) {
	switch s {
	case ServiceScholar:
		return "https://scholar.google.com/scholar?", nil
	default:
		return "", ErrInvalidService
	}
}

// QuerySpec describes one search request. Query is required; every pointer
// field is optional and is serialized only when non-nil.
type QuerySpec struct {
	// Query is the free-text search (q).
	Query string `json:"query" yaml:"query"`

	// CitationID lists works citing this id (cites).
	CitationID *string `json:"citation_id,omitempty" yaml:"citation_id,omitempty"`

	// FromYear and ToYear bound the publication year (as_ylo, as_yhi).
	FromYear *uint16 `json:"from_year,omitempty" yaml:"from_year,omitempty"`
	ToYear   *uint16 `json:"to_year,omitempty" yaml:"to_year,omitempty"`

	// SortMode is 0 for relevance, 1 abstracts only, 2 everything (scisbd).
	// Values of 3 or more are treated as unset.
	SortMode *uint8 `json:"sort_mode,omitempty" yaml:"sort_mode,omitempty"`

	// ClusterID queries all versions of one work (cluster). Meant to be used
	// without Query and CitationID, but not enforced.
	ClusterID *string `json:"cluster_id,omitempty" yaml:"cluster_id,omitempty"`

	// Language is the interface language, e.g. "en" (hl).
	Language *string `json:"language,omitempty" yaml:"language,omitempty"`

	// LanguageLimit restricts results to languages, e.g. "lang_fr|lang_en" (lr).
	LanguageLimit *string `json:"language_limit,omitempty" yaml:"language_limit,omitempty"`

	// Limit is the maximum number of results (num); Offset is the first
	// result index (start).
	Limit  *uint32 `json:"limit,omitempty" yaml:"limit,omitempty"`
	Offset *uint32 `json:"offset,omitempty" yaml:"offset,omitempty"`

	// AdultFiltering maps to safe=active or safe=off.
	AdultFiltering *bool `json:"adult_filtering,omitempty" yaml:"adult_filtering,omitempty"`

	// IncludeSimilarResults maps to filter=1 or filter=0.
	IncludeSimilarResults *bool `json:"include_similar_results,omitempty" yaml:"include_similar_results,omitempty"`

	// IncludeCitations maps to as_vis=1 or as_vis=0.
	IncludeCitations *bool `json:"include_citations,omitempty" yaml:"include_citations,omitempty"`
}

// Service returns the front end this spec targets.
func (q QuerySpec) Service() Service { return ServiceScholar }

// LimitOrZero returns the result limit, or 0 when none is set.
func (q QuerySpec) LimitOrZero() uint32 {
	if q.Limit == nil {
		return 0
	}
	return *q.Limit
}

// Build serializes q into its canonical request URL. Segments follow a fixed
// order and only present fields are emitted, so equal specs always produce
// byte-identical URLs. Free-text values are inserted as given; use Escaped
// first when they may contain reserved characters.
func (q QuerySpec) Build() (string, error) {
	if q.Query == "" {
		return "", ErrMissingRequiredField
	}
	base, err := BaseURL(q.Service())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("q=")
	b.WriteString(q.Query)

	if q.CitationID != nil {
		writeParam(&b, "cites", *q.CitationID)
	}
	if q.FromYear != nil {
		writeParam(&b, "as_ylo", strconv.FormatUint(uint64(*q.FromYear), 10))
	}
	if q.ToYear != nil {
		writeParam(&b, "as_yhi", strconv.FormatUint(uint64(*q.ToYear), 10))
	}
	if q.SortMode != nil && *q.SortMode < 3 {
		writeParam(&b, "scisbd", strconv.FormatUint(uint64(*q.SortMode), 10))
	}
	if q.ClusterID != nil {
		writeParam(&b, "cluster", *q.ClusterID)
	}
	if q.Language != nil {
		writeParam(&b, "hl", *q.Language)
	}
	if q.LanguageLimit != nil {
		writeParam(&b, "lr", *q.LanguageLimit)
	}
	if q.Limit != nil {
		writeParam(&b, "num", strconv.FormatUint(uint64(*q.Limit), 10))
	}
	if q.Offset != nil {
		writeParam(&b, "start", strconv.FormatUint(uint64(*q.Offset), 10))
	}
	if q.AdultFiltering != nil {
		writeParam(&b, "safe", choose(*q.AdultFiltering, "active", "off"))
	}
	if q.IncludeSimilarResults != nil {
		writeParam(&b, "filter", choose(*q.IncludeSimilarResults, "1", "0"))
	}
	if q.IncludeCitations != nil {
		writeParam(&b, "as_vis", choose(*q.IncludeCitations, "1", "0"))
	}

	return b.String(), nil
}

// Escaped returns a copy of q with every free-text field percent-encoded.
// Numeric and boolean fields are unchanged.
func (q QuerySpec) Escaped() QuerySpec {
	out := q
	out.Query = url.QueryEscape(q.Query)
	out.CitationID = escapePtr(q.CitationID)
	out.ClusterID = escapePtr(q.ClusterID)
	out.Language = escapePtr(q.Language)
	out.LanguageLimit = escapePtr(q.LanguageLimit)
	return out
}

// Validate returns advisory messages for field combinations the service
// documents as unsupported. Build does not consult it.
func (q QuerySpec) Validate() []string {
	var warnings []string
	if q.ClusterID != nil && q.CitationID != nil {
		warnings = append(warnings, "cluster_id should not be combined with citation_id")
	}
	if q.FromYear != nil && q.ToYear != nil && *q.FromYear > *q.ToYear {
		warnings = append(warnings, "from_year is after to_year")
	}
	return warnings
}

func writeParam(b *strings.Builder, key, value string) {
	b.WriteByte('&')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func escapePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := url.QueryEscape(*s)
	return &v
}
