// Package importer reads word lists from spreadsheets.
//
// Both formats start with a header row naming the columns. Recognized headers
// are text, translation, transcription, definition, part_of_speech and level,
// matched case-insensitively in any order. Only text is required.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vytor/lexiflash/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingTextColumn = errors.New("header has no text column")
	ErrEmptyFile         = errors.New("file has no header row")
)

const (
	colText          = "text"
	colTranslation   = "translation"
	colTranscription = "transcription"
	colDefinition    = "definition"
	colPartOfSpeech  = "part_of_speech"
	colLevel         = "level"
)

// RowError describes a row that could not be turned into a word. Row is the
// 1-based row number in the file, header included.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Result holds the parsed words and the rows that were skipped. Words carry
// content only; ids, GUIDs and dictionary are assigned by the caller.
type Result struct {
	Words   []models.Word
	Skipped []RowError
}

// ReadFile parses an .xlsx or .csv file by extension.
func ReadFile(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV parses comma separated rows from r.
func ReadCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseRows(rows)
}

func readXLSX(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup && name != "" {
			cols[name] = i
		}
	}
	if _, ok := cols[colText]; !ok {
		return nil, ErrMissingTextColumn
	}

	res := &Result{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if isBlank(row) {
			continue
		}

		w := models.Word{
			Text:          cell(colText),
			Translation:   cell(colTranslation),
			Transcription: cell(colTranscription),
			Definition:    cell(colDefinition),
			PartOfSpeech:  models.Noun,
			Level:         models.LevelA1,
		}
		if w.Text == "" {
			res.Skipped = append(res.Skipped, RowError{Row: rowNum, Reason: "empty text"})
			continue
		}
		if v := cell(colPartOfSpeech); v != "" {
			w.PartOfSpeech = models.PartOfSpeech(strings.ToLower(v))
			if !w.PartOfSpeech.Valid() {
				res.Skipped = append(res.Skipped, RowError{Row: rowNum, Reason: fmt.Sprintf("unknown part of speech %q", v)})
				continue
			}
		}
		if v := cell(colLevel); v != "" {
			w.Level = models.Level(strings.ToUpper(v))
			if !w.Level.Valid() {
				res.Skipped = append(res.Skipped, RowError{Row: rowNum, Reason: fmt.Sprintf("unknown level %q", v)})
				continue
			}
		}
		res.Words = append(res.Words, w)
	}
	return res, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
