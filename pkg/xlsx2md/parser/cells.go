package parser

import (
	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/models"
	"github.com/xuri/excelize/v2"
)

// readXLSX loads every sheet of an Office Open XML workbook in tab order.
func readXLSX(path string) ([]models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make([]models.Sheet, 0, len(sheetList))
	for _, sheetName := range sheetList {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, models.Sheet{Name: sheetName, Rows: rows})
	}
	return sheets, nil
}

// ExtractRows extracts the stored values of a sheet, one models.Row per
// spreadsheet row from the first row to the last row holding data. Blank
// rows in between are kept as zero-length rows. Values are read raw, so
// number and date formats are not applied. A formula cell with no cached
// result yields its formula text, "=" included.
func ExtractRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, raw := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if raw == "" {
				formula, err := f.GetCellFormula(sheetName, cellName)
				if err != nil {
					return nil, err
				}
				if formula != "" {
					cells[colIdx] = models.Cell{Value: "=" + formula}
				}
				continue
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = models.Cell{Value: typedValue(cellType, raw)}
		}
		result = append(result, cells)
	}

	return result, nil
}

// typedValue converts a raw stored value according to the cell type.
func typedValue(cellType excelize.CellType, raw string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return raw
	default:
		return parseNumber(raw)
	}
}
