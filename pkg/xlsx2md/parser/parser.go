// Package parser reads spreadsheet files into models.Workbook.
//
// Cells keep their stored values: no number or date format is applied, so a
// date cell comes out as its serial day number (45293 for 2024-01-02).
package parser

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/models"
)

// ErrInvalidWorkbook indicates the input is not a readable workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Format identifies the reader used for a file.
type Format string

const (
	// FormatXLSX covers the Office Open XML family (.xlsx, .xlsm, .xltx, .xltm).
	FormatXLSX Format = "xlsx"
	// FormatXLS is the legacy BIFF8 format (.xls).
	FormatXLS Format = "xls"
)

// DefaultCharset is the charset assumed for legacy .xls strings.
const DefaultCharset = "utf-8"

// Options configures workbook reading.
type Options struct {
	// Charset is the string encoding passed to the .xls reader.
	// Empty means DefaultCharset.
	Charset string
}

func (o Options) charset() string {
	if o.Charset == "" {
		return DefaultCharset
	}
	return o.Charset
}

// ReadError represents a failure to open or parse a workbook.
type ReadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: %s %q: %v", ErrInvalidWorkbook, e.Format, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is reports ReadError values as ErrInvalidWorkbook.
func (e *ReadError) Is(target error) bool {
	return target == ErrInvalidWorkbook
}

// DetectFormat picks the reader for path from its extension.
// Unknown extensions fall back to FormatXLSX and let the content decide.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return FormatXLS
	default:
		return FormatXLSX
	}
}

// Open reads the whole workbook at path into memory. The file is closed
// before Open returns.
func Open(path string, opts Options) (*models.Workbook, error) {
	format := DetectFormat(path)

	var (
		sheets []models.Sheet
		err    error
	)
	switch format {
	case FormatXLS:
		sheets, err = readXLS(path, opts.charset())
	default:
		sheets, err = readXLSX(path)
	}
	if err != nil {
		return nil, &ReadError{Path: path, Format: format, Err: err}
	}

	return &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

// parseNumber attempts to parse a stored numeric value.
// Returns nil for "", int64 for integers, float64 for finite decimals, or the
// original string.
func parseNumber(s string) interface{} {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}
