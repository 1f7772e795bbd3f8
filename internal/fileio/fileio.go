// Package fileio reads tabular files (csv, xls, xlsx) into header-keyed rows
// for the numcol command. Exported spreadsheets are the dominant source of
// locale-formatted numbers, and the formats they arrive in are messy: shifted
// header rows, blank columns, legacy encodings.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Table is a parsed tabular file: header names in file order and one
// map[header]cell per non-empty data row.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Read parses r according to the extension of filename. headerRow is the
// 1-based row holding column names; rows above it are discarded.
func Read(r io.Reader, filename string, headerRow int) (*Table, error) {
	if headerRow < 1 {
		return nil, errors.New("fileio: header row is 1-based and must be >= 1")
	}
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".xls":
		rows, err = readXLS(r)
	default:
		return nil, fmt.Errorf("fileio: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return newTable(rows, headerRow), nil
}

// newTable keys data rows by the header row, naming blank headers
// "Column N" and dropping rows whose every cell is blank.
func newTable(rows [][]string, headerRow int) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}
	idx := headerRow - 1
	if idx >= len(rows) {
		idx = 0
	}
	t.Headers = make([]string, len(rows[idx]))
	for i, h := range rows[idx] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		t.Headers[i] = h
	}
	for _, rec := range rows[idx+1:] {
		m := make(map[string]string, len(t.Headers))
		empty := true
		for i, h := range t.Headers {
			var v string
			if i < len(rec) {
				v = rec[i]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			t.Rows = append(t.Rows, m)
		}
	}
	return t
}

// Column returns the cells of the named column in row order. The name is
// matched against headers exactly first, then case-insensitively with
// collapsed whitespace, then as a substring, so "price" finds a column
// exported as " Unit Price ".
func (t *Table) Column(name string) ([]string, error) {
	header, ok := t.resolveHeader(name)
	if !ok {
		return nil, fmt.Errorf("fileio: no column %q (headers: %s)",
			name, strings.Join(t.Headers, ", "))
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[header]
	}
	return out, nil
}

func (t *Table) resolveHeader(name string) (string, bool) {
	for _, h := range t.Headers {
		if h == name {
			return h, true
		}
	}
	want := foldHeader(name)
	if want == "" {
		return "", false
	}
	for _, h := range t.Headers {
		if foldHeader(h) == want {
			return h, true
		}
	}
	for _, h := range t.Headers {
		if strings.Contains(foldHeader(h), want) {
			return h, true
		}
	}
	return "", false
}

// foldHeader lowercases and collapses whitespace, including the non-breaking
// spaces spreadsheet exports sprinkle into headers.
func foldHeader(s string) string {
	s = strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
