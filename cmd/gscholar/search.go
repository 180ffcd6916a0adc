// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/L04DB4L4NC3R/gscholar/internal/scholar"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search Google Scholar",
	Long: `Search builds a Scholar request URL from the query words and option flags,
fetches the results page once and prints the extracted records.

Options that are not given are left out of the URL entirely, so Scholar's own
defaults apply. Use --from-file to re-run a query saved with --save.`,
	Example: `  gscholar search transformer attention --from-year 2018 --limit 10
  gscholar search --cites 213123123123 --lang en --format json
  gscholar search deep learning --save dl.yaml
  gscholar search --from-file dl.yaml --url-only`,
	RunE: runSearch,
}

func init() {
	addSearchFlags(searchCmd.Flags())
	rootCmd.AddCommand(searchCmd)
}

func addSearchFlags(f *pflag.FlagSet) {
	f.String("cites", "", "only works citing this citation id")
	f.Uint16("from-year", 0, "earliest publication year")
	f.Uint16("to-year", 0, "latest publication year")
	f.Uint8("sort", 0, "sort mode: 0 relevance, 1 date (abstracts only), 2 date (everything)")
	f.String("cluster", "", "all versions of the work with this cluster id")
	f.String("lang", "", "interface language, e.g. en")
	f.String("lang-limit", "", "restrict results to languages, e.g. lang_fr|lang_en")
	f.Uint32("limit", 0, "maximum number of results")
	f.Uint32("offset", 0, "index of the first result")
	f.Bool("safe", false, "enable adult content filtering (--safe=false disables it)")
	f.Bool("similar", false, "include similar results (--similar=false omits them)")
	f.Bool("citations", false, "include citations (--citations=false omits them)")

	f.Bool("url-only", false, "print the request URL and exit without fetching")
	f.String("save", "", "write the query and its results to this YAML file")
	f.String("from-file", "", "load the query from a YAML query file")
}

func runSearch(cmd *cobra.Command, args []string) error {
	spec, err := specFromFlags(cmd.Flags(), args)
	if err != nil {
		return err
	}

	req := prepare(spec)
	url, err := req.Build()
	if err != nil {
		return err
	}

	if urlOnly, _ := cmd.Flags().GetBool("url-only"); urlOnly {
		fmt.Println(url)
		return nil
	}

	records, err := newClient().Search(cmd.Context(), req)
	if err != nil {
		return err
	}

	if err := scholar.Format(records, cfg.Output.Format, os.Stdout); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := scholar.WriteQueryFile(path, spec, url, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved query to %s\n", path)
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	if lib != nil {
		defer lib.Close()
		archive(cmd.Context(), lib, spec.Query, url, records)
	}
	return nil
}

// specFromFlags builds the unescaped spec from a query file or from the
// positional words plus flags. Optional fields are set only for flags the
// user actually passed, so a flag's zero value never leaks into the URL.
func specFromFlags(f *pflag.FlagSet, args []string) (scholar.QuerySpec, error) {
	if path, _ := f.GetString("from-file"); path != "" {
		if len(args) > 0 {
			return scholar.QuerySpec{}, errors.New("--from-file cannot be combined with query arguments")
		}
		qf, err := scholar.ReadQueryFile(path)
		if err != nil {
			return scholar.QuerySpec{}, err
		}
		return qf.Query, nil
	}

	spec := scholar.QuerySpec{Query: strings.Join(args, " ")}

	if f.Changed("cites") {
		v, _ := f.GetString("cites")
		spec.CitationID = &v
	}
	if f.Changed("from-year") {
		v, _ := f.GetUint16("from-year")
		spec.FromYear = &v
	}
	if f.Changed("to-year") {
		v, _ := f.GetUint16("to-year")
		spec.ToYear = &v
	}
	if f.Changed("sort") {
		v, _ := f.GetUint8("sort")
		spec.SortMode = &v
	}
	if f.Changed("cluster") {
		v, _ := f.GetString("cluster")
		spec.ClusterID = &v
	}
	if f.Changed("lang") {
		v, _ := f.GetString("lang")
		spec.Language = &v
	}
	if f.Changed("lang-limit") {
		v, _ := f.GetString("lang-limit")
		spec.LanguageLimit = &v
	}
	if f.Changed("limit") {
		v, _ := f.GetUint32("limit")
		spec.Limit = &v
	}
	if f.Changed("offset") {
		v, _ := f.GetUint32("offset")
		spec.Offset = &v
	}
	if f.Changed("safe") {
		v, _ := f.GetBool("safe")
		spec.AdultFiltering = &v
	}
	if f.Changed("similar") {
		v, _ := f.GetBool("similar")
		spec.IncludeSimilarResults = &v
	}
	if f.Changed("citations") {
		v, _ := f.GetBool("citations")
		spec.IncludeCitations = &v
	}

	return spec, nil
}
