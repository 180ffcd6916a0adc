// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField is returned by Build when the query text is empty.
	ErrMissingRequiredField = errors.New("missing required field: query")

	// ErrInvalidService is returned for a Service value with no base URL.
	ErrInvalidService = errors.New("invalid service")

	// ErrConnection wraps any failure reported by the Fetcher.
	ErrConnection = errors.New("connection error")

	// ErrParse is returned when a document cannot be read as markup at all.
	ErrParse = errors.New("parse error")
)

// Stage names the pipeline step a search failed in.
type Stage string

const (
	StageBuild   Stage = "build"
	StageFetch   Stage = "fetch"
	StageExtract Stage = "extract"
)

// SearchError reports which stage of Client.Search failed. Err matches one of
// the package sentinels with errors.Is.
type SearchError struct {
	Stage Stage
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
