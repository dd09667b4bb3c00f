// Package deck imports flashcard decks from spreadsheet files. Both
// CSV and Excel files are supported; rows are question, answer and an
// optional category column.
package deck

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"devmastery/internal/domain"
)

// ErrNoCards is returned when a file parses fine but contains no
// usable rows.
var ErrNoCards = errors.New("no flashcards found in file")

// ImportConfig defines how a deck file is read.
type ImportConfig struct {
	// SheetName is the Excel sheet to read. Ignored for CSV.
	SheetName string

	// SkipHeader drops the first row.
	SkipHeader bool

	// Category overrides the category column for every card.
	Category string
}

// DefaultImportConfig reads Sheet1 and treats the first row as a
// header.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// ImportResult describes what a file yielded.
type ImportResult struct {
	Cards   []domain.Flashcard
	Skipped int
	Errors  []string
}

// ImportFile parses a deck file into flashcards. Cards carry no ID;
// the progress service assigns one when it adds them to the deck.
// Duplicate questions within the file keep the first occurrence.
func ImportFile(path string, cfg ImportConfig) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path, cfg.SheetName)
	default:
		return nil, fmt.Errorf("unsupported deck format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	seen := make(map[string]bool)
	for i, row := range rows {
		if i == 0 && cfg.SkipHeader {
			continue
		}
		card, ok := parseRow(row, cfg.Category)
		if !ok {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing question or answer", i+1))
			continue
		}
		if seen[card.Question] {
			result.Skipped++
			continue
		}
		seen[card.Question] = true
		result.Cards = append(result.Cards, card)
	}

	if len(result.Cards) == 0 {
		return nil, ErrNoCards
	}
	return result, nil
}

func parseRow(row []string, categoryOverride string) (domain.Flashcard, bool) {
	var question, answer, category string
	if len(row) > 0 {
		question = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		answer = strings.TrimSpace(row[1])
	}
	if len(row) > 2 {
		category = strings.TrimSpace(row[2])
	}
	if categoryOverride != "" {
		category = categoryOverride
	}
	if question == "" || answer == "" {
		return domain.Flashcard{}, false
	}
	return domain.Flashcard{
		Question: question,
		Answer:   answer,
		Category: category,
	}, true
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read deck file: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
