// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L04DB4L4NC3R/gscholar/internal/library"
	"github.com/L04DB4L4NC3R/gscholar/internal/scholar"
	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// newSearchFlags parses argv into a fresh flag set so tests do not share
// state through the package-level searchCmd.
func newSearchFlags(t *testing.T, argv ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("search", pflag.ContinueOnError)
	addSearchFlags(f)
	require.NoError(t, f.Parse(argv))
	return f
}

func TestSpecFromFlags(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		args []string
		want string
	}{
		{
			name: "words only",
			args: []string{"deep", "learning"},
			want: "https://scholar.google.com/scholar?q=deep learning",
		},
		{
			name: "every option",
			argv: []string{
				"--cites", "213123123123", "--from-year", "2018", "--to-year", "2021",
				"--sort", "0", "--cluster", "3121312312", "--lang", "en",
				"--lang-limit", "lang_fr|lang_en", "--limit", "10", "--offset", "5",
				"--safe", "--similar", "--citations",
			},
			args: []string{"abcd"},
			want: "https://scholar.google.com/scholar?q=abcd&cites=213123123123&as_ylo=2018&as_yhi=2021&scisbd=0&cluster=3121312312&hl=en&lr=lang_fr|lang_en&num=10&start=5&safe=active&filter=1&as_vis=1",
		},
		{
			name: "explicit false booleans",
			argv: []string{"--safe=false", "--similar=false", "--citations=false"},
			args: []string{"x"},
			want: "https://scholar.google.com/scholar?q=x&safe=off&filter=0&as_vis=0",
		},
		{
			name: "zero values given explicitly are kept",
			argv: []string{"--limit", "0", "--sort", "0"},
			args: []string{"x"},
			want: "https://scholar.google.com/scholar?q=x&scisbd=0&num=0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSearchFlags(t, tt.argv...)
			spec, err := specFromFlags(f, tt.args)
			require.NoError(t, err)
			got, err := spec.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	limit := uint32(3)
	require.NoError(t, scholar.WriteQueryFile(path, scholar.QuerySpec{Query: "bert", Limit: &limit}, "", nil))

	f := newSearchFlags(t, "--from-file", path)
	spec, err := specFromFlags(f, nil)
	require.NoError(t, err)
	assert.Equal(t, "bert", spec.Query)
	assert.Equal(t, uint32(3), spec.LimitOrZero())

	_, err = specFromFlags(f, []string{"extra"})
	assert.Error(t, err)
}

func TestPrepareEscapes(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })

	spec := scholar.QuerySpec{Query: "a b"}
	cfg.Search.Escape = true
	assert.Equal(t, "a+b", prepare(spec).Query)
	cfg.Search.Escape = false
	assert.Equal(t, "a b", prepare(spec).Query)
}

func TestFormatRuns(t *testing.T) {
	runs := []library.Run{{
		ID:        "0b1e6c3a-5f0e-4a55-9d4c-1f2e3d4c5b6a",
		Query:     "attention",
		URL:       "https://scholar.google.com/scholar?q=attention",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Count:     10,
	}}

	var buf bytes.Buffer
	require.NoError(t, formatRuns(runs, types.OutputTable, &buf))
	assert.Contains(t, buf.String(), "0b1e6c3a-5f0e-4a55-9d4c-1f2e3d4c5b6a")
	assert.Contains(t, buf.String(), "attention")

	buf.Reset()
	require.NoError(t, formatRuns(runs, types.OutputJSON, &buf))
	assert.Contains(t, buf.String(), `"count": 10`)

	buf.Reset()
	require.NoError(t, formatRuns(nil, types.OutputTable, &buf))
	assert.Equal(t, "No archived searches.\n", buf.String())
}
