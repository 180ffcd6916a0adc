// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/L04DB4L4NC3R/gscholar/internal/scholar"
)

var batchCmd = &cobra.Command{
	Use:   "batch <query-file>...",
	Short: "Run several saved queries concurrently",
	Long: `Batch loads each YAML query file, runs every query as an independent search
and prints the results file by file in the order given. At most
batch.concurrency searches are in flight at once.

A failing query does not stop the others; the command exits non-zero if any
query failed. With --write, each file is rewritten with its fresh results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("write", false, "store results back into each query file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	specs := make([]scholar.QuerySpec, len(args))
	for i, path := range args {
		qf, err := scholar.ReadQueryFile(path)
		if err != nil {
			return err
		}
		specs[i] = qf.Query
	}

	reqs := make([]scholar.QuerySpec, len(specs))
	for i, s := range specs {
		reqs[i] = prepare(s)
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	if lib != nil {
		defer lib.Close()
	}

	write, _ := cmd.Flags().GetBool("write")
	results := scholar.SearchBatch(cmd.Context(), newClient(), reqs, cfg.Batch.Concurrency)

	for i, r := range results {
		path := args[i]
		fmt.Fprintf(os.Stderr, "==> %s <==\n", path)
		if r.Err != nil {
			logger.Error("query failed", zap.String("file", path), zap.Error(r.Err))
			continue
		}

		if err := scholar.Format(r.Records, cfg.Output.Format, os.Stdout); err != nil {
			return err
		}

		// Build cannot fail here: the search already built the same spec.
		url, _ := r.Spec.Build()
		if write {
			if err := scholar.WriteQueryFile(path, specs[i], url, r.Records); err != nil {
				return err
			}
		}
		archive(cmd.Context(), lib, specs[i].Query, url, r.Records)
	}

	if n := scholar.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d queries failed", n, len(results))
	}
	return nil
}
