// ABOUTME: CSV export reader: turns export files into raw batches.
// ABOUTME: Classifies files by source-name prefix; mtime is the ingestion time.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/normalize"
)

// ReadExportDir reads every CSV in dir whose name starts with one of the
// configured source names and returns one batch per file. Files are read in
// name order; each batch's ingestion timestamp is the file's modification
// time. Header-only files produce no batch and are logged, matching the
// normalizer's policy for empty exports.
func ReadExportDir(dir string, sources []string, log *zap.Logger) ([]normalize.Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read export dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var batches []normalize.Batch
	for _, name := range names {
		source := classify(name, sources)
		if source == "" {
			log.Debug("skipping unrecognized file", zap.String("file", name))
			continue
		}

		path := filepath.Join(dir, name)
		rows, err := readCSV(path)
		if err != nil {
			log.Warn("skipping unreadable export", zap.String("file", name), zap.Error(err))
			continue
		}
		if rows == nil {
			log.Info("no data in export", zap.String("file", name))
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}

		log.Info("processing export",
			zap.String("file", name),
			zap.String("source", source),
			zap.Int("rows", len(rows)))

		batches = append(batches, normalize.Batch{
			Source:     source,
			IngestedAt: info.ModTime(),
			Rows:       rows,
		})
	}
	return batches, nil
}

func classify(filename string, sources []string) string {
	for _, s := range sources {
		if strings.HasPrefix(filename, s) {
			return s
		}
	}
	return ""
}

// readCSV parses one export into raw rows keyed by header name. A file with
// one column or fewer holds no usable data and yields nil rows.
func readCSV(path string) ([]normalize.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 || len(all[0]) <= 1 {
		return nil, nil
	}

	header := all[0]
	rows := make([]normalize.RawRow, 0, len(all)-1)
	for _, rec := range all[1:] {
		row := make(normalize.RawRow, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
