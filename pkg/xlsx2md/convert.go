package xlsx2md

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/markdown"
	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/models"
	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/parser"
)

// Exists reports whether path names an existing file system entry.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Load reads the whole workbook at inputPath into memory.
func Load(inputPath string, opts Options) (*models.Workbook, error) {
	if !Exists(inputPath) {
		return nil, NewConvertError(StageRead, inputPath, ErrFileNotFound)
	}
	wb, err := parser.Open(inputPath, opts.parserOptions())
	if err != nil {
		return nil, NewConvertError(StageRead, inputPath, err)
	}
	return wb, nil
}

// Convert reads the workbook at inputPath and writes its Markdown rendering
// to outputPath, replacing any existing file. The workbook is fully read
// before the output file is created, so a read failure leaves outputPath
// untouched.
func Convert(inputPath, outputPath string, opts Options) (err error) {
	wb, err := Load(inputPath, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return NewConvertError(StageWrite, outputPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = NewConvertError(StageWrite, outputPath, cerr)
		}
	}()

	if err := Render(out, wb, opts); err != nil {
		return NewConvertError(StageWrite, outputPath, err)
	}

	opts.logger().Info("converted workbook",
		"input", inputPath,
		"output", outputPath,
		"sheets", len(wb.Sheets))
	return nil
}

// ConvertTo reads the workbook at inputPath and writes its Markdown
// rendering to w.
func ConvertTo(w io.Writer, inputPath string, opts Options) error {
	wb, err := Load(inputPath, opts)
	if err != nil {
		return err
	}
	if err := Render(w, wb, opts); err != nil {
		return NewConvertError(StageWrite, "output", err)
	}
	return nil
}

// Render writes the Markdown rendering of wb to w.
func Render(w io.Writer, wb *models.Workbook, opts Options) error {
	logger := opts.logger()
	mw := markdown.NewWriter(w, opts.markdownOptions())

	for _, sheet := range wb.Sheets {
		logger.Debug("rendering sheet",
			"sheet", sheet.Name,
			"rows", len(sheet.Rows),
			"cols", sheet.MaxCols())
		if err := mw.WriteSheet(sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}
	return mw.Flush()
}
