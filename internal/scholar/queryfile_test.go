// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

func TestWriteReadQueryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	spec := fullSpec()
	url, err := spec.Build()
	require.NoError(t, err)
	records := []types.ResultRecord{
		{Title: "T", Author: "A", Summary: "S", Link: "https://example.org"},
	}

	require.NoError(t, WriteQueryFile(path, spec, url, records))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, spec, qf.Query)
	assert.Equal(t, url, qf.URL)
	assert.Equal(t, records, qf.Results)
	require.NotNil(t, qf.Summary)
	assert.Equal(t, 1, qf.Summary.Total)
	assert.False(t, qf.Summary.Timestamp.IsZero())

	rebuilt, err := qf.Query.Build()
	require.NoError(t, err)
	assert.Equal(t, url, rebuilt)
}

func TestReadQueryFileQueryOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	content := `query:
  query: transformers
  from_year: 2020
  sort_mode: 1
  language_limit: lang_en
  include_citations: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Nil(t, qf.Summary)
	assert.Empty(t, qf.Results)

	got, err := qf.Query.Build()
	require.NoError(t, err)
	assert.Equal(t, "https://scholar.google.com/scholar?q=transformers&as_ylo=2020&scisbd=1&lr=lang_en&as_vis=0", got)
}

func TestReadQueryFileErrors(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading query file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query: [unclosed"), 0o644))
	_, err = ReadQueryFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing query file")
}
