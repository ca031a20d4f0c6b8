package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bazarstat/bazarstat/internal/compare"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <model query>",
		Short: "Compare a model's price range across platforms",
		Long: `Select listings whose name contains the query (case-sensitive) and
summarize min/max/median price per platform.

Matching is best-effort: there is no product key linking listings
across platforms. A minimum-price floor excludes accessory listings
(cases, chargers) whose titles carry the model name.

Examples:
  bazarstat compare "Tab A9"
  bazarstat compare --floor 100 "iPad 10"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCompare,
	}

	cmd.Flags().String("input", "data/data.csv", "canonical dataset path")
	cmd.Flags().String("db", "", "read from this SQLite database instead of the CSV")
	cmd.Flags().Int64("run", 0, "snapshot run ID (0: latest; with --db only)")
	cmd.Flags().Float64("floor", 50, "minimum price (AZN) to exclude accessory listings")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	floor, _ := cmd.Flags().GetFloat64("floor")
	opts := compare.Options{Floor: decimal.NewFromFloat(floor)}

	query := strings.Join(args, " ")
	res := compare.ByModel(query, records, opts)

	fmt.Printf("Price range for %q (floor %s AZN)\n", res.Query, opts.Floor.StringFixed(0))
	for _, p := range res.Platforms {
		if !p.HasData {
			fmt.Printf("  %-22s no data\n", p.Source)
			continue
		}
		fmt.Printf("  %-22s min %8s   median %8s   max %8s   (%d listings)\n",
			p.Source,
			p.Min.StringFixed(2), p.Median.StringFixed(2), p.Max.StringFixed(2),
			p.Matches)
	}
	return nil
}
