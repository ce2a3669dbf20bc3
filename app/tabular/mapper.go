package tabular

import (
	"strconv"
	"strings"
)

// Row is one raw data row from a sheet. Rows may be ragged: a cell index
// beyond the row's length reads as absent, never as an error.
type Row []string

// Cell returns the trimmed value at position i, or def when the cell is
// absent or empty.
func (r Row) Cell(i int, def string) string {
	if i < 0 || i >= len(r) {
		return def
	}
	v := strings.TrimSpace(r[i])
	if v == "" {
		return def
	}
	return v
}

// CellInt parses the cell at position i as an integer, falling back to def
// for absent, empty or non-numeric cells.
func (r Row) CellInt(i, def int) int {
	v := r.Cell(i, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// CellList splits a comma-joined cell into trimmed segments. An absent or
// empty cell yields an empty slice, not a one-element slice holding "".
func (r Row) CellList(i int) []string {
	raw := r.Cell(i, "")
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MapRows projects a raw table into typed records. Row 0 is the header and
// is always skipped; remaining rows are mapped in order.
func MapRows[T any](table [][]string, from func(Row) T) []T {
	if len(table) <= 1 {
		return nil
	}
	out := make([]T, 0, len(table)-1)
	for _, raw := range table[1:] {
		out = append(out, from(Row(raw)))
	}
	return out
}
