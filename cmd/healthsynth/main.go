package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"healthsynth/adapters/excel"
	"healthsynth/adapters/postgres"
	"healthsynth/internal"
	"healthsynth/internal/config"
	"healthsynth/internal/dataset"
	"healthsynth/internal/generate"
	"healthsynth/internal/profiling"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "healthsynth",
		Short: "Generate simulated adult health record datasets",
		Long: `healthsynth synthesizes tabular adult health records (age, gender, BMI,
waist circumference, fasting blood glucose, triglycerides, HDL, hypertension)
whose marginal and conditional distributions approximate published population
health statistics. Generation is deterministic for a given seed and chunking.`,
	}

	rootCmd.AddCommand(
		newGenerateCmd(cfg),
		newSummarizeCmd(),
		newLoadCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	var (
		rows      int
		chunkSize int
		workers   int
		seed      int64
		output    string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic health record dataset",
		Long: `Generate N rows of simulated health records into a CSV (or xlsx) artifact.

Rows are generated in fixed-size chunks on a worker pool; each chunk is
seeded deterministically (seed + chunk index), so the same seed and chunk
size reproduce the artifact byte-for-byte regardless of worker count.

Example: healthsynth generate --rows 100000 --seed 1234 --output records.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := internal.DefaultLogger
			runner := generate.NewRunner(log)

			csvPath := output
			wantXLSX := false
			switch strings.ToLower(format) {
			case "csv":
			case "xlsx":
				wantXLSX = true
				if strings.HasSuffix(csvPath, ".xlsx") {
					csvPath = strings.TrimSuffix(csvPath, ".xlsx") + ".csv"
				}
			default:
				return fmt.Errorf("unsupported format %q (want csv or xlsx)", format)
			}

			manifest, err := runner.Run(cmd.Context(), generate.Options{
				Rows:      rows,
				ChunkSize: chunkSize,
				Workers:   workers,
				Seed:      seed,
				Output:    csvPath,
			})
			if err != nil {
				return err
			}

			if wantXLSX {
				records, err := dataset.ReadRecords(csvPath)
				if err != nil {
					return err
				}
				xlsxPath := strings.TrimSuffix(csvPath, ".csv") + ".xlsx"
				if err := excel.NewWriter().Write(records, xlsxPath); err != nil {
					return err
				}
				log.Info("exported %d rows to %s", len(records), xlsxPath)
			}

			fmt.Printf("run %s: %d rows, %d chunks, fingerprint %s\n",
				manifest.RunID, manifest.Rows, manifest.Chunks, manifest.Fingerprint)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", cfg.Generator.Rows, "Number of records to generate")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", cfg.Generator.ChunkSize, "Rows per chunk")
	cmd.Flags().IntVar(&workers, "workers", cfg.Generator.Workers, "Concurrent chunk workers")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Generator.Seed, "Base random seed (chunk i uses seed+i)")
	cmd.Flags().StringVar(&output, "output", cfg.Generator.Output, "Output artifact path")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or xlsx")

	return cmd
}

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [dataset.csv]",
		Short: "Print per-column summary statistics for a generated dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := dataset.ReadRecords(args[0])
			if err != nil {
				return err
			}
			summaries, err := profiling.Summarize(records)
			if err != nil {
				return err
			}

			fmt.Printf("%-20s %8s %10s %10s %8s %8s %10s\n",
				"column", "count", "mean", "std", "min", "max", "normal_p")
			for _, s := range summaries {
				if s.Name == "High_Blood_Pressure" {
					fmt.Printf("%-20s %8d   at-risk %.1f%%\n", s.Name, s.Count, s.AtRiskPct)
					continue
				}
				fmt.Printf("%-20s %8d %10.2f %10.2f %8.1f %8.1f %10.4f\n",
					s.Name, s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.NormalP)
			}
			return nil
		},
	}
	return cmd
}

func newLoadCmd(cfg *config.Config) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "load [dataset.csv]",
		Short: "Bulk-load a generated dataset into Postgres",
		Long: `Load a generated CSV artifact into the health_records table.

The connection string comes from --database-url or DATABASE_URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return fmt.Errorf("no database URL: set --database-url or DATABASE_URL")
			}
			records, err := dataset.ReadRecords(args[0])
			if err != nil {
				return err
			}

			db, err := postgres.Connect(databaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := postgres.NewRecordRepository(db)
			ctx := cmd.Context()
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := repo.BulkInsert(ctx, records); err != nil {
				return err
			}
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("loaded %d rows (%d total in health_records)\n", len(records), total)
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", cfg.Database.URL, "Postgres connection string")
	return cmd
}
