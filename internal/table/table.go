// Package table assembles flattened player records into one
// schema-consistent delimited table.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jdray/lineup-stats/internal/lineups"
)

// ErrNoRecords signals that there is nothing to write; callers should
// skip artifact creation rather than emit a header-only file.
var ErrNoRecords = errors.New("no records to assemble")

// Leading columns in this exact order; every other field follows
// lexicographically.
var priorityColumns = []string{"matchId", "round", "side", "teamId", "playerId", "playerName", "position"}

// Table is the assembled dataset: a unified header plus one row per
// record, every cell defined.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Assemble computes the union of field names over all records and
// materializes every row against that schema. A cell whose record lacks
// the field, or whose value is nil or blank, gets 0 — the flatten-time
// default re-applied against the dataset-wide schema, since a field
// present in one record may be absent from another.
func Assemble(records []lineups.Record) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	seen := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	cols := Columns(seen)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			v, ok := rec[c]
			if !ok || lineups.IsMissing(v) {
				v = 0
			}
			row[i] = formatValue(v)
		}
		rows = append(rows, row)
	}
	return &Table{Columns: cols, Rows: rows}, nil
}

// Columns orders a field-name set: priority prefix first, the rest
// sorted lexicographically.
func Columns(fields map[string]struct{}) []string {
	prio := make(map[string]struct{}, len(priorityColumns))
	for _, c := range priorityColumns {
		prio[c] = struct{}{}
	}
	rest := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := prio[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	cols := make([]string, 0, len(priorityColumns)+len(rest))
	cols = append(cols, priorityColumns...)
	return append(cols, rest...)
}

// WriteCSV emits the table with its header row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
