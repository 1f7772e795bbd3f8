package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV reads all records, sniffing the charset from the first 2KB.
// UTF-8 passes through; Windows-1251 (the usual legacy export encoding) is
// transcoded. Ragged rows are allowed, spreadsheet exports produce them.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	charset := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			charset = strings.ToLower(det.Charset)
		}
	}

	var src io.Reader = br
	switch charset {
	case "windows-1251", "cp1251":
		src = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
}
