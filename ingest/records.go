package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

var (
	ErrUnknownFormat = errors.New("unknown record file format")
	ErrEmptySheet    = errors.New("workbook has no sheets")
)

var (
	wordHeaders   = []string{"word", "slovo", "odpoved", "answer"}
	regionHeaders = []string{"region", "okres", "district"}
)

// Options control how raw survey tables are read.
type Options struct {
	Vocabulary models.Vocabulary
	// Header names of the word and region columns. When empty, a header row
	// is detected from well-known names; without one, the first two
	// columns are used.
	WordColumn   string
	RegionColumn string
	Comma        rune
}

// Report counts what happened to the rows of a table.
type Report struct {
	Rows         int `json:"rows"`
	Accepted     int `json:"accepted"`
	Malformed    int `json:"malformed"`
	Unclassified int `json:"unclassified"`
}

// ReadCSV reads (word, region) rows from delimited text. Rows that are too
// short, blank, unparseable or carry an unknown word are skipped and counted.
func ReadCSV(r io.Reader, opts Options) ([]models.SurveyRecord, Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	var rows [][]string
	malformed := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				malformed++
				continue
			}
			return nil, Report{}, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, row)
	}

	records, report := fromRows(rows, opts)
	report.Rows += malformed
	report.Malformed += malformed
	return records, report, nil
}

// ReadXLSX reads (word, region) rows from the first sheet of a workbook,
// e.g. a survey form export.
func ReadXLSX(r io.Reader, opts Options) ([]models.SurveyRecord, Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, Report{}, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	records, report := fromRows(rows, opts)
	return records, report, nil
}

// OpenRecords reads a record file, picking the reader by extension.
func OpenRecords(path string, opts Options) ([]models.SurveyRecord, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, err
	}
	defer f.Close()

	var (
		records []models.SurveyRecord
		report  Report
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		records, report, err = ReadCSV(f, opts)
	case ".tsv":
		opts.Comma = '\t'
		records, report, err = ReadCSV(f, opts)
	case ".xlsx":
		records, report, err = ReadXLSX(f, opts)
	default:
		return nil, Report{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, Report{}, err
	}

	slog.Info("survey records read",
		"path", path,
		"rows", report.Rows,
		"accepted", report.Accepted,
		"malformed", report.Malformed,
		"unclassified", report.Unclassified,
	)
	return records, report, nil
}

func fromRows(rows [][]string, opts Options) ([]models.SurveyRecord, Report) {
	var report Report
	if len(rows) == 0 {
		return nil, report
	}
	if len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	wordIdx, regionIdx, header := columns(rows[0], opts)
	if header {
		rows = rows[1:]
	}

	classifier := aggregate.NewClassifier(opts.Vocabulary)
	records := make([]models.SurveyRecord, 0, len(rows))
	for _, row := range rows {
		report.Rows++
		if wordIdx >= len(row) || regionIdx >= len(row) {
			report.Malformed++
			continue
		}
		region := aggregate.CleanText(row[regionIdx])
		if region == "" || strings.TrimSpace(row[wordIdx]) == "" {
			report.Malformed++
			continue
		}
		word, ok := classifier.Canonical(row[wordIdx])
		if !ok {
			report.Unclassified++
			continue
		}
		records = append(records, models.SurveyRecord{Word: word, Region: region})
		report.Accepted++
	}
	return records, report
}

// columns finds the word and region column indices and reports whether the
// first row is a header.
func columns(first []string, opts Options) (wordIdx, regionIdx int, header bool) {
	wordNames, regionNames := wordHeaders, regionHeaders
	if opts.WordColumn != "" {
		wordNames = []string{opts.WordColumn}
	}
	if opts.RegionColumn != "" {
		regionNames = []string{opts.RegionColumn}
	}

	wordIdx = indexOf(first, wordNames)
	regionIdx = indexOf(first, regionNames)
	if wordIdx >= 0 && regionIdx >= 0 {
		return wordIdx, regionIdx, true
	}
	return 0, 1, false
}

func indexOf(row []string, names []string) int {
	for _, name := range names {
		want := aggregate.NormalizeKey(name)
		for i, cell := range row {
			if aggregate.NormalizeKey(cell) == want {
				return i
			}
		}
	}
	return -1
}
