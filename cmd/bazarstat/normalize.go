package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bazarstat/bazarstat/internal/mapping"
	"github.com/bazarstat/bazarstat/internal/model"
	"github.com/bazarstat/bazarstat/internal/normalize"
	"github.com/bazarstat/bazarstat/internal/service"
	"github.com/bazarstat/bazarstat/internal/storage"
)

func normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize raw per-source snapshots into the canonical dataset",
		Long: `Read each collector's raw CSV snapshot from the data directory,
apply the per-source mapping tables, and merge everything into one
canonical dataset (data.csv), optionally persisting the run to SQLite.

Raw files are expected as <data-dir>/<source>.csv with the ".az"
suffix dropped, e.g. data/irshad.csv for irshad.az. Missing files are
skipped with a warning; a snapshot rarely covers all eleven platforms.`,
		RunE: runNormalize,
	}

	cmd.Flags().String("data-dir", "data", "directory holding raw per-source CSV files")
	cmd.Flags().String("out", filepath.Join("data", "data.csv"), "canonical dataset output path")
	cmd.Flags().String("db", "", "SQLite database path (empty: don't persist)")
	cmd.Flags().BoolP("dry-run", "d", false, "normalize and report without writing outputs")

	_ = viper.BindPFlag("data.dir", cmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("data.out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("storage.db", cmd.Flags().Lookup("db"))

	return cmd
}

// rawFileName maps a platform identifier to its collector's snapshot file
// name: the registrable label without the ".az" zone, like the collectors
// themselves write (irshad.az -> irshad.csv, tap.az -> tap.csv).
func rawFileName(source string) string {
	return strings.TrimSuffix(source, ".az") + ".csv"
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	dataDir := viper.GetString("data.dir")
	outPath := viper.GetString("data.out")
	dbPath := viper.GetString("storage.db")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	reg := mapping.NewRegistry()

	inputs := make(map[string][]model.RawRecord)
	for _, src := range reg.Sources() {
		path := filepath.Join(dataDir, rawFileName(src))
		if _, err := os.Stat(path); err != nil {
			slog.Warn("No raw snapshot for source, skipping", "source", src, "path", path)
			continue
		}
		rows, err := storage.ReadRawSource(path)
		if err != nil {
			return fmt.Errorf("failed to read raw snapshot for %s: %w", src, err)
		}
		inputs[src] = rows
		slog.Debug("Loaded raw snapshot", "source", src, "rows", len(rows))
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no raw snapshots found in %s", dataDir)
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription("Normalizing sources"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	ds, err := normalize.Merge(cmd.Context(), inputs, reg,
		normalize.WithSourceDone(func(normalize.SourceResult) {
			_ = bar.Add(1)
		}))
	if err != nil {
		return err
	}

	fmt.Printf("\nNormalized %d listings from %d sources\n", ds.Stats.Total, len(inputs))
	for _, src := range model.AllSources {
		kept, ok := ds.Stats.Kept[src]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-22s %5d listings", src, kept)
		if dropped := ds.Stats.Dropped[src]; dropped > 0 {
			line += fmt.Sprintf("  (%d malformed rows dropped)", dropped)
		}
		fmt.Println(line)
	}
	if dropped := ds.Stats.TotalDropped(); dropped > 0 {
		fmt.Printf("Dropped %d malformed rows in total\n", dropped)
	}

	if dryRun {
		slog.Info("Dry run, skipping outputs")
		return nil
	}

	if err := storage.WriteDataset(outPath, ds.Records); err != nil {
		return err
	}
	fmt.Printf("Wrote canonical dataset to %s\n", outPath)

	if dbPath != "" {
		var store service.SnapshotStore
		store, err := storage.NewSQLiteStorage(dbPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}
		runID, err := store.SaveSnapshot(cmd.Context(), ds)
		if err != nil {
			return err
		}
		slog.Info("Persisted snapshot", "db", dbPath, "run_id", runID)
	}

	return nil
}
