package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agrisense/crop-advisor/internal/dataset"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Show status of the regional data files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		norm, err := newNormalizer()
		if err != nil {
			return err
		}
		cache := newDatasetCache(norm)

		formatDatasetStatus(os.Stdout, cache.Status(ctx))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}

func formatDatasetStatus(out io.Writer, statuses []dataset.Status) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATASET\tPATH\tROWS\tCROPS\tSTATUS")

	for _, s := range statuses {
		status := "ok"
		if s.Error != "" {
			status = s.Error
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", s.Name, s.Path, s.Rows, s.Crops, status)
	}
	_ = w.Flush()
}
