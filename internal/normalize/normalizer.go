// Package normalize turns per-source raw rows into the canonical dataset:
// one mapping-driven row normalizer plus the fixed-order dataset merger.
package normalize

import (
	"log/slog"
	"strings"

	"github.com/bazarstat/bazarstat/internal/common"
	"github.com/bazarstat/bazarstat/internal/mapping"
	"github.com/bazarstat/bazarstat/internal/model"
)

// identityColumns is the minimum a raw row must carry to count as a
// listing. Rows missing any of these are dropped and counted.
var identityColumns = []string{"name", "price_current", "url"}

// Normalize applies one source's mapping table to a raw row. Every
// canonical column comes out populated or empty; only a row missing the
// identification triplet fails, with a MalformedRecordError.
func Normalize(raw model.RawRecord, m mapping.SourceMapping, sourceID string) (model.Record, error) {
	var missing []string
	for _, col := range identityColumns {
		fm, ok := m.Fields[col]
		if !ok || strings.TrimSpace(raw[fm.Raw]) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return model.Record{}, &common.MalformedRecordError{Source: sourceID, Missing: missing}
	}

	rec := model.Record{Source: sourceID}
	for _, col := range model.Columns {
		if col == "source" {
			continue
		}
		v, ok := m.Apply(raw, col)
		if ok {
			rec.Set(col, v)
		}
	}
	// price_current is never empty on a canonical record, even when the
	// raw label reduced to nothing.
	if strings.TrimSpace(rec.PriceCurrent) == "" {
		rec.PriceCurrent = "0.00"
	}
	return rec, nil
}

// SourceResult is one source's normalization outcome: the kept records in
// input order plus the count of dropped malformed rows.
type SourceResult struct {
	Source  string
	Records []model.Record
	Dropped int
}

// Source normalizes all raw rows of one source. Malformed rows are dropped
// and counted, never silently discarded; an unknown source identifier is
// fatal and returned as an error.
func Source(sourceID string, rows []model.RawRecord, reg *mapping.Registry) (SourceResult, error) {
	m, err := reg.Lookup(sourceID)
	if err != nil {
		return SourceResult{}, err
	}

	res := SourceResult{Source: sourceID, Records: make([]model.Record, 0, len(rows))}
	for _, raw := range rows {
		rec, err := Normalize(raw, m, sourceID)
		if err != nil {
			res.Dropped++
			slog.Debug("dropped malformed row", "source", sourceID, "error", err)
			continue
		}
		res.Records = append(res.Records, rec)
	}
	if res.Dropped > 0 {
		slog.Warn("dropped malformed rows", "source", sourceID, "dropped", res.Dropped)
	}
	return res, nil
}
