package xlsx2md

import (
	"errors"
	"fmt"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidWorkbook indicates the input file could not be read as a workbook.
var ErrInvalidWorkbook = parser.ErrInvalidWorkbook

// Stage names the step of a conversion that failed.
type Stage string

const (
	StageRead  Stage = "read"
	StageWrite Stage = "write"
)

// ConvertError represents an error during conversion.
type ConvertError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError creates a new ConvertError.
func NewConvertError(stage Stage, path string, err error) *ConvertError {
	return &ConvertError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
