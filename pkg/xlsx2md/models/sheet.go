package models

// Sheet represents a single named worksheet.
type Sheet struct {
	// Name is the worksheet tab name.
	Name string
	// Rows contains the sheet rows in source order.
	Rows []Row
}

// IsEmpty reports whether the sheet has no rows at all.
func (s Sheet) IsEmpty() bool {
	return len(s.Rows) == 0
}

// MaxCols returns the length of the widest row, or 0 for a sheet without rows.
func (s Sheet) MaxCols() int {
	maxCols := 0
	for _, row := range s.Rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	return maxCols
}
