package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bazarstat/bazarstat/internal/model"
	"github.com/bazarstat/bazarstat/internal/segment"
	"github.com/bazarstat/bazarstat/internal/service"
	"github.com/bazarstat/bazarstat/internal/storage"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute market aggregates over the canonical dataset",
		Long: `Derive the aggregate tables from a canonical dataset: catalogue
sizes, median price positioning, price-tier mix, discount depth,
financing coverage, retail vs secondary-market buckets and birmarket
installment-term preference.`,
		RunE: runReport,
	}

	cmd.Flags().String("input", filepath.Join("data", "data.csv"), "canonical dataset path")
	cmd.Flags().String("db", "", "read from this SQLite database instead of the CSV")
	cmd.Flags().Int64("run", 0, "snapshot run ID (0: latest; with --db only)")

	return cmd
}

// loadRecords resolves the dataset for read-only commands: a SQLite run
// when --db is set, the canonical CSV otherwise.
func loadRecords(cmd *cobra.Command) ([]model.Record, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath != "" {
		runID, _ := cmd.Flags().GetInt64("run")
		var store service.SnapshotStore
		store, err := storage.NewSQLiteStorage(dbPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
		return store.ListRecords(cmd.Context(), runID)
	}

	input, _ := cmd.Flags().GetString("input")
	return storage.ReadDataset(input)
}

func runReport(cmd *cobra.Command, _ []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("dataset is empty")
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "Catalogue size\n")
	for _, cs := range segment.CatalogueSizes(records) {
		fmt.Fprintf(w, "  %s\t%d listings\t(%s)\n", cs.Source, cs.Listings, cs.Channel)
	}

	fmt.Fprintf(w, "\nMedian price, retail stores (AZN)\n")
	retailMedians := segment.MedianPrices(records, true)
	for _, m := range retailMedians.Platforms {
		fmt.Fprintf(w, "  %s\t%s\tover %d valid prices\n", m.Source, m.Median.StringFixed(2), m.Valid)
	}
	if retailMedians.HasData {
		fmt.Fprintf(w, "  overall\t%s\n", retailMedians.Overall.StringFixed(2))
	}

	fmt.Fprintf(w, "\nMedian price, all platforms (AZN)\n")
	for _, m := range segment.MedianPrices(records, false).Platforms {
		fmt.Fprintf(w, "  %s\t%s\t(%s)\n", m.Source, m.Median.StringFixed(2), m.Channel)
	}

	fmt.Fprintf(w, "\nPrice segment mix (%% of valid-priced catalogue)\n")
	fmt.Fprintf(w, "  platform\t%s\t%s\t%s\t%s\n",
		segment.TierBudget, segment.TierMainstream, segment.TierUpperMid, segment.TierPremium)
	for _, row := range segment.TierMatrix(records) {
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f\t%.1f\t%.1f\n",
			row.Source, row.Share[0], row.Share[1], row.Share[2], row.Share[3])
	}

	fmt.Fprintf(w, "\nDiscount depth (%%)\n")
	discounts := segment.DiscountDepths(records)
	if len(discounts) == 0 {
		fmt.Fprintf(w, "  no discount data\n")
	}
	for _, d := range discounts {
		fmt.Fprintf(w, "  %s\tavg %.1f\tmax %.1f\tover %d listings\n", d.Source, d.Avg, d.Max, d.Samples)
	}

	fmt.Fprintf(w, "\nFinancing coverage, retail stores\n")
	for _, fc := range segment.Financing(records) {
		fmt.Fprintf(w, "  %s\t%.0f%%\t(%d of %d listings)\n", fc.Source, fc.Pct, fc.WithFinancing, fc.Listings)
	}

	fmt.Fprintf(w, "\nRetail vs tap.az price distribution (%% of listings)\n")
	for _, b := range segment.PriceBuckets(records) {
		fmt.Fprintf(w, "  %s\tretail %.0f%%\ttap.az %.0f%%\n", b.Label, b.RetailPct, b.TapPct)
	}

	terms := segment.TermPreference(records)
	if len(terms) > 0 {
		fmt.Fprintf(w, "\nInstallment term preference, birmarket.az\n")
		for _, t := range terms {
			fmt.Fprintf(w, "  %s\t%d listings\n", t.Term, t.Listings)
		}
	}

	return nil
}
