package models

// Workbook represents a spreadsheet file as an ordered list of sheets.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets lists the worksheets in the order the file defines them.
	Sheets []Sheet
}

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		names[i] = s.Name
	}
	return names
}
