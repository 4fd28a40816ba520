// Package ingest drives the batch pipeline: files in order, rows in
// order, each normalized record inserted and its generated id emitted.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/housespending/ingest/internal/expense"
)

// Inserter persists one normalized record and returns the id the store
// generated for it.
type Inserter interface {
	Insert(ctx context.Context, rec expense.Record) (int64, error)
}

// Summary reports what a completed run accomplished.
type Summary struct {
	Files    int
	Inserted int
}

// Driver processes expenditure files strictly sequentially. Any error in
// any stage aborts the whole run; records inserted before the failure
// stay persisted since each insert commits independently.
type Driver struct {
	Mapping expense.Mapping
	Store   Inserter
	Out     io.Writer    // one generated id per line, then the summary
	Logger  *slog.Logger // optional; defaults to slog.Default
}

// Run processes each file to completion in order and writes the
// files-processed summary on success.
func (d *Driver) Run(ctx context.Context, files []string) (Summary, error) {
	logger := d.logger().With("run_id", uuid.NewString())
	logger.Info("run starting", "files", len(files))

	var sum Summary
	for _, path := range files {
		n, err := d.processFile(ctx, logger, path)
		sum.Inserted += n
		if err != nil {
			return sum, fmt.Errorf("%s: %w", path, err)
		}
		sum.Files++
	}

	fmt.Fprintf(d.Out, "%d files processed successfully!\n", sum.Files)
	logger.Info("run complete", "files", sum.Files, "records", sum.Inserted)
	return sum, nil
}

// processFile drains one file: row 1 through the header normalizer, every
// later row through the record builder and loader. The file is closed
// before the next one is opened.
func (d *Driver) processFile(ctx context.Context, logger *slog.Logger, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Row width is validated against the header by the builder, not the
	// CSV reader, so mismatches surface as MalformedRowError.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		logger.Warn("empty file", "file", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	fields, err := expense.NormalizeHeaders(header, d.Mapping)
	if err != nil {
		return 0, err
	}

	builder := expense.NewBuilder(fields)
	inserted := 0
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return inserted, fmt.Errorf("line %d: %w", line, err)
		}
		if isEmptyRow(row) {
			continue
		}

		rec, err := builder.Build(row)
		if err != nil {
			return inserted, fmt.Errorf("line %d: %w", line, err)
		}

		id, err := d.Store.Insert(ctx, rec)
		if err != nil {
			return inserted, fmt.Errorf("line %d: %w", line, err)
		}

		fmt.Fprintln(d.Out, id)
		logger.Debug("record inserted", "file", path, "line", line, "id", id)
		inserted++
	}

	logger.Info("file processed", "file", path, "records", inserted)
	return inserted, nil
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// FindCSVFiles returns the .csv files directly under dir in name order.
func FindCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
