// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/L04DB4L4NC3R/gscholar/internal/library"
	"github.com/L04DB4L4NC3R/gscholar/internal/scholar"
	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

var errNoLibrary = errors.New("no library configured: set library.path or GSCHOLAR_LIBRARY_PATH")

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse archived searches",
	Long: `Library inspects the SQLite archive of completed searches. Searches are
archived only when library.path is set; the archive is never consulted when
running a new search.`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived searches, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := requireLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := lib.Runs(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return formatRuns(runs, cfg.Output.Format, os.Stdout)
	},
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the records of one archived search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := requireLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		records, err := lib.Records(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return scholar.Format(records, cfg.Output.Format, os.Stdout)
	},
}

func init() {
	libraryListCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 for all)")

	libraryCmd.AddCommand(libraryListCmd, libraryShowCmd)
	rootCmd.AddCommand(libraryCmd)
}

func requireLibrary() (*library.Library, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, err
	}
	if lib == nil {
		return nil, errNoLibrary
	}
	return lib, nil
}

func formatRuns(runs []library.Run, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case types.OutputYAML, types.OutputCSL:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived searches.")
		return nil
	}
	fmt.Fprintf(w, "%-36s  %-20s  %7s  %s\n", "Run", "Created", "Results", "Query")
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-20s  %7d  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Count, r.Query)
	}
	return nil
}
