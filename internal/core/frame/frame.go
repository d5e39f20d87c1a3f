// Package frame holds a small immutable string table with named columns
//
// A Frame is the in-memory form of a delimited incident file: a header row of
// labels and a list of records. Values stay as the raw cell text; callers
// decide how to parse them. Every operation returns a new Frame
package frame

import (
	"bytes"
	"encoding/csv"
	"io"

	perr "crimemap/internal/platform/errors"
)

// Frame is an immutable table of string cells
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a frame from labels and rows, every row must have one cell per column
// Duplicate labels resolve to the first occurrence
func New(columns []string, rows [][]string) (*Frame, error) {
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, perr.InvalidArgf("row %d has %d cells, want %d", i, len(r), len(columns))
		}
	}
	cols := append([]string(nil), columns...)
	cp := make([][]string, len(rows))
	for i, r := range rows {
		cp[i] = append([]string(nil), r...)
	}
	return build(cols, cp), nil
}

func build(cols []string, rows [][]string) *Frame {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}
	return &Frame{columns: cols, index: idx, rows: rows}
}

// ReadCSV parses comma separated text with a header row
// A UTF-8 byte order mark is dropped, short rows are padded with empty cells
// and rows wider than the header are rejected
func ReadCSV(r io.Reader) (*Frame, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDataSourceUnavailable, "read csv")
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, perr.Newf(perr.ErrorCodeDataSourceUnavailable, "csv has no header row")
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDataSourceUnavailable, "parse csv header")
	}

	var rows [][]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataSourceUnavailable, "parse csv line %d", line)
		}
		if len(rec) > len(header) {
			return nil, perr.Newf(perr.ErrorCodeDataSourceUnavailable, "csv line %d has %d cells, header has %d", line, len(rec), len(header))
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		rows = append(rows, rec)
	}
	return build(header, rows), nil
}

// Columns returns a copy of the column labels in order
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

// Len returns the number of rows
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.rows)
}

// Has reports whether the frame carries a column with this exact label
func (f *Frame) Has(col string) bool {
	_, ok := f.index[col]
	return ok
}

// Index returns the position of col, or -1
func (f *Frame) Index(col string) int {
	if i, ok := f.index[col]; ok {
		return i
	}
	return -1
}

// Value returns the cell at row i for col, empty when the column is absent
func (f *Frame) Value(i int, col string) string {
	j, ok := f.index[col]
	if !ok {
		return ""
	}
	return f.rows[i][j]
}

// Row returns a copy of row i
func (f *Frame) Row(i int) []string { return append([]string(nil), f.rows[i]...) }

// TrimColumns returns a frame whose labels went through fn, rows shared
func (f *Frame) TrimColumns(fn func(string) string) *Frame {
	cols := make([]string, len(f.columns))
	for i, c := range f.columns {
		cols[i] = fn(c)
	}
	return build(cols, f.rows)
}

// Filter returns a frame with the rows keep accepts, order preserved
func (f *Frame) Filter(keep func(i int) bool) *Frame {
	var rows [][]string
	for i := range f.rows {
		if keep(i) {
			rows = append(rows, f.rows[i])
		}
	}
	return build(f.columns, rows)
}

// Concat stacks frames vertically
// Columns are the union of all labels in first seen order, cells a frame
// lacks are empty. Rows keep their input order
func Concat(frames ...*Frame) *Frame {
	var cols []string
	seen := map[string]int{}
	for _, f := range frames {
		if f == nil {
			continue
		}
		for _, c := range f.columns {
			if _, ok := seen[c]; !ok {
				seen[c] = len(cols)
				cols = append(cols, c)
			}
		}
	}

	var rows [][]string
	for _, f := range frames {
		if f == nil {
			continue
		}
		pos := make([]int, len(f.columns))
		for j, c := range f.columns {
			pos[j] = seen[c]
		}
		for _, r := range f.rows {
			out := make([]string, len(cols))
			for j, v := range r {
				if f.index[f.columns[j]] != j {
					continue // shadowed duplicate label
				}
				out[pos[j]] = v
			}
			rows = append(rows, out)
		}
	}
	return build(cols, rows)
}
