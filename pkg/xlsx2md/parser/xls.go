package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/models"
	"github.com/extrame/xls"
)

// readXLS loads every sheet of a legacy BIFF8 workbook. The legacy reader
// hands back cell text already converted by the library, so values are
// kept as strings.
func readXLS(path, charset string) (sheets []models.Sheet, err error) {
	// The BIFF decoder panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			sheets, err = nil, fmt.Errorf("decode: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, charset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no workbook stream")
	}

	// Sheets are decoded lazily from f, so all of them are read here.
	sheets = make([]models.Sheet, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			return nil, fmt.Errorf("sheet %d: missing", i)
		}
		sheets = append(sheets, models.Sheet{Name: ws.Name, Rows: xlsRows(ws)})
	}
	return sheets, nil
}

func xlsRows(ws *xls.WorkSheet) []models.Row {
	var rows []models.Row
	lastData := -1
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := sheetRow(ws, r)
		if row == nil {
			rows = append(rows, models.Row{})
			continue
		}
		texts := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			texts = append(texts, row.Col(c))
		}
		cells := textRow(texts)
		if len(cells) > 0 {
			lastData = r
		}
		rows = append(rows, cells)
	}
	// Match the xlsx reader: nothing after the last row holding data.
	return rows[:lastData+1]
}

// sheetRow returns row r, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences the missing row instead of returning nil.
func sheetRow(ws *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(r)
}

// textRow builds a row of text cells, dropping trailing blanks.
func textRow(texts []string) models.Row {
	n := len(texts)
	for n > 0 && texts[n-1] == "" {
		n--
	}
	cells := make(models.Row, n)
	for i := 0; i < n; i++ {
		if texts[i] != "" {
			cells[i] = models.Cell{Value: texts[i]}
		}
	}
	return cells
}
