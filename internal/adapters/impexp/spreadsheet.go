package impexp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"timesheet/internal/domain"
	"timesheet/internal/ports"
)

const legacyCharset = "utf-8"

var errNoWorksheet = errors.New("no worksheet found")

// SpreadsheetReader reads the first sheet of an .xlsx workbook, or of a
// legacy .xls workbook when the filename says so.
type SpreadsheetReader struct{}

var _ ports.SpreadsheetReader = (*SpreadsheetReader)(nil)

func NewSpreadsheetReader() *SpreadsheetReader {
	return &SpreadsheetReader{}
}

func (r *SpreadsheetReader) ReadRows(ctx context.Context, filename string, content io.Reader) ([]domain.SheetRow, error) {
	if content == nil {
		return nil, fmt.Errorf("no file content")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	var grid [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		grid, err = readLegacyWorkbook(data)
	default:
		grid, err = readWorkbook(data)
	}
	if err != nil {
		return nil, err
	}

	return rowsFromGrid(grid), nil
}

func readWorkbook(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoWorksheet
	}

	return file.GetRows(sheets[0])
}

// readLegacyWorkbook returns the cells of the first sheet only. Rows with
// no cells come back nil. extrame/xls panics on some malformed records, so
// a panic is reported as a parse error.
func readLegacyWorkbook(data []byte) (grid [][]string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			grid, err = nil, fmt.Errorf("malformed xls workbook: %v", recovered)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), legacyCharset)
	if err != nil {
		return nil, err
	}
	if workbook == nil || workbook.NumSheets() == 0 {
		return nil, errNoWorksheet
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, errNoWorksheet
	}
	// MaxRow is the highest row index, so zero means at most a header row.
	if sheet.MaxRow == 0 {
		return [][]string{}, nil
	}

	// Capping at the first sheet's row count keeps later sheets out.
	return workbook.ReadAllCells(int(sheet.MaxRow) + 1), nil
}

// rowsFromGrid treats the first row as the header. Blank header cells are
// named "Unnamed: <index>", repeated names get ".1", ".2" suffixes and fully
// empty data rows are dropped.
func rowsFromGrid(grid [][]string) []domain.SheetRow {
	rows := make([]domain.SheetRow, 0)
	if len(grid) == 0 {
		return rows
	}

	header := headerNames(grid[0])
	for _, cells := range grid[1:] {
		if isBlankRow(cells) {
			continue
		}
		for len(header) < len(cells) {
			header = append(header, unnamedColumn(len(header)))
		}

		row := make(domain.SheetRow, len(header))
		for idx, column := range header {
			value := ""
			if idx < len(cells) {
				value = cells[idx]
			}
			row[column] = value
		}
		rows = append(rows, row)
	}

	return rows
}

func headerNames(cells []string) []string {
	names := make([]string, 0, len(cells))
	seen := map[string]int{}
	for idx, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = unnamedColumn(idx)
		}
		if count, ok := seen[name]; ok {
			seen[name] = count + 1
			name = fmt.Sprintf("%s.%d", name, count+1)
		} else {
			seen[name] = 0
		}
		names = append(names, name)
	}
	return names
}

func unnamedColumn(idx int) string {
	return fmt.Sprintf("Unnamed: %d", idx)
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
