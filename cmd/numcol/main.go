// numcol extracts one numeric column from a tabular file (csv, xls, xlsx),
// parsing each cell with locale-aware rules:
//
//	numcol -file export.csv -column "Unit Price" -locale de-DE
//	numcol -file report.xlsx -column qty -json
//
// Cells that do not parse are skipped and counted; the rest are summarized
// on stdout, or emitted as JSON lines with -json.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jackhp95/util/internal/config"
	"github.com/jackhp95/util/internal/fileio"
	"github.com/jackhp95/util/locale"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	var (
		file   = flag.String("file", "", "tabular input file (.csv, .xls, .xlsx)")
		column = flag.String("column", "", "column holding the numbers")
		loc    = flag.String("locale", cfg.Locale, "BCP 47 locale the numbers are written in (default: system locale)")
		header = flag.Int("header", cfg.HeaderRow, "1-based header row")
		asJSON = flag.Bool("json", false, "emit parsed values as JSON lines instead of a summary")
	)
	flag.Parse()
	if *file == "" || *column == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger = logger.With().Str("run", uuid.NewString()).Logger()

	if err := extract(logger, *file, *column, *loc, *header, *asJSON); err != nil {
		logger.Fatal().Err(err).Msg("numcol failed")
	}
}

type parsedCell struct {
	Row   int     `json:"row"`
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
}

func extract(logger zerolog.Logger, file, column, loc string, headerRow int, asJSON bool) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := fileio.Read(f, file, headerRow)
	if err != nil {
		return err
	}
	cells, err := table.Column(column)
	if err != nil {
		return err
	}
	logger.Info().Str("file", file).Str("column", column).Str("locale", loc).
		Int("rows", len(cells)).Msg("column loaded")

	var locales []string
	if loc != "" {
		locales = []string{loc}
	}

	enc := json.NewEncoder(os.Stdout)
	var (
		count   int
		skipped int
		sum     float64
		minV    = math.Inf(1)
		maxV    = math.Inf(-1)
	)
	for i, cell := range cells {
		v := locale.ParseNumber(cell, locales...)
		if math.IsNaN(v) {
			logger.Debug().Int("row", i+1).Str("cell", cell).Msg("unparseable cell skipped")
			skipped++
			continue
		}
		if asJSON {
			if err := enc.Encode(parsedCell{Row: i + 1, Raw: cell, Value: v}); err != nil {
				return err
			}
		}
		count++
		sum += v
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	if !asJSON {
		fmt.Printf("parsed %d cells (%d skipped)\n", count, skipped)
		if count > 0 {
			fmt.Printf("sum %g  min %g  max %g  mean %g\n", sum, minV, maxV, sum/float64(count))
		}
	}
	logger.Info().Int("parsed", count).Int("skipped", skipped).Msg("done")
	return nil
}
