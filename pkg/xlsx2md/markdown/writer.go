// Package markdown renders a workbook as Markdown: one "# <sheet>" section per
// worksheet holding a pipe table, sections separated by a horizontal rule.
package markdown

import (
	"bufio"
	"io"
	"strings"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/models"
)

// DefaultEmptyMarker is written in place of a table for a sheet without rows.
// The Chinese marker "空表" used by earlier versions of the tool is available
// through Options.EmptyMarker (config key empty_marker).
const DefaultEmptyMarker = "Empty sheet"

const (
	headerCell = "---"
	rule       = "---"
)

// Options configures rendering.
type Options struct {
	// EmptyMarker replaces the table of a sheet with no rows. It is written
	// in italics. Empty means DefaultEmptyMarker.
	EmptyMarker string
}

// Writer renders sheets to an underlying io.Writer.
type Writer struct {
	w    *bufio.Writer
	opts Options
	err  error
}

// NewWriter returns a Writer buffering output to w. Call Flush, or use
// WriteWorkbook, to push buffered output through.
func NewWriter(w io.Writer, opts Options) *Writer {
	if opts.EmptyMarker == "" {
		opts.EmptyMarker = DefaultEmptyMarker
	}
	return &Writer{w: bufio.NewWriter(w), opts: opts}
}

// WriteWorkbook renders every sheet in workbook order and flushes.
func (mw *Writer) WriteWorkbook(wb *models.Workbook) error {
	for _, sheet := range wb.Sheets {
		if err := mw.WriteSheet(sheet); err != nil {
			return err
		}
	}
	return mw.Flush()
}

// WriteSheet renders one sheet section. A sheet with rows ends with a
// horizontal rule; a sheet without rows gets the empty marker only.
func (mw *Writer) WriteSheet(sheet models.Sheet) error {
	mw.writeString("# " + sheet.Name + "\n\n")

	if sheet.IsEmpty() {
		mw.writeString("*" + mw.opts.EmptyMarker + "*\n\n")
		return mw.err
	}

	maxCols := sheet.MaxCols()
	for i, row := range sheet.Rows {
		mw.writeLine(row.Texts(maxCols))
		if i == 0 {
			mw.writeLine(separator(maxCols))
		}
	}

	mw.writeString("\n" + rule + "\n\n")
	return mw.err
}

// Flush writes any buffered output to the underlying writer.
func (mw *Writer) Flush() error {
	if mw.err != nil {
		return mw.err
	}
	mw.err = mw.w.Flush()
	return mw.err
}

// writeLine writes cells as "| a | b |".
func (mw *Writer) writeLine(cells []string) {
	mw.writeString(FormatRow(cells) + "\n")
}

func (mw *Writer) writeString(s string) {
	if mw.err != nil {
		return
	}
	_, mw.err = mw.w.WriteString(s)
}

// FormatRow joins cells into a pipe table line without a trailing newline.
func FormatRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func separator(n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = headerCell
	}
	return cells
}
