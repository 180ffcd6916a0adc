// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for gscholar: the extracted
// result record and the configuration tree read by viper.
package types

// ResultRecord is one search hit scraped from a results page. Records carry
// no identity; their position in the returned slice is the document order.
type ResultRecord struct {
	// Title is the text of the result heading, tags stripped, untrimmed.
	Title string `json:"title" yaml:"title"`

	// Author is the raw author/venue/year line as displayed.
	Author string `json:"author" yaml:"author"`

	// Summary is the abstract snippet shown under the heading.
	Summary string `json:"summary" yaml:"summary"`

	// Link is the href of the first anchor in the result, or "" if none.
	Link string `json:"link" yaml:"link"`
}
