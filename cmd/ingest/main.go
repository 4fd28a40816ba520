package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/housespending/ingest/internal/config"
	"github.com/housespending/ingest/internal/expense"
	"github.com/housespending/ingest/internal/ingest"
	"github.com/housespending/ingest/internal/logging"
	"github.com/housespending/ingest/internal/store"
)

func main() {
	var dir string

	cmd := &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Load House expenditure CSV files into Postgres",
		Long: "ingest normalizes House expenditure CSV files (headers and\n" +
			"values) and inserts each record into the expenditures table,\n" +
			"printing the generated id per record. Files are processed\n" +
			"strictly in order; the first error aborts the run.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to scan for *.csv files (default: INGEST_DATA_DIR)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, files []string, dir string) error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	errLog := logging.NewErrorLog(cfg.Logging.ErrorFile)

	slog.Info("configuration loaded", "config", cfg.String())

	if len(files) == 0 {
		if dir == "" {
			dir = cfg.Ingest.DataDir
		}
		files, err = ingest.FindCSVFiles(dir)
		if err != nil {
			return fail(errLog, err)
		}
	}

	driver := &ingest.Driver{
		Mapping: expense.DefaultMapping,
		Store:   store.NewLoader(store.PgxConnector(cfg.Database.URL)),
		Out:     cmd.OutOrStdout(),
		Logger:  slog.Default(),
	}

	if _, err := driver.Run(cmd.Context(), files); err != nil {
		return fail(errLog, err)
	}
	return nil
}

// fail records err in the error log and returns the same timestamped
// line as the process's termination message.
func fail(errLog *logging.ErrorLog, err error) error {
	line := logging.ErrorLine(time.Now(), err.Error())
	if logErr := errLog.Append(line); logErr != nil {
		slog.Error("failed to write error log", "error", logErr)
	}
	slog.Error("run aborted", "error", err)
	return fmt.Errorf("%s", line)
}
