// Package xlsx2md converts spreadsheet workbooks into Markdown documents.
package xlsx2md

import (
	"io"
	"log/slog"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/markdown"
	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/parser"
)

// Options configures conversion behavior.
type Options struct {
	// EmptyMarker is written in italics for a sheet without rows.
	// If empty, defaults to markdown.DefaultEmptyMarker.
	EmptyMarker string
	// Charset is the string encoding of legacy .xls files.
	// If empty, defaults to parser.DefaultCharset.
	Charset string
	// Logger receives progress records. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		EmptyMarker: markdown.DefaultEmptyMarker,
		Charset:     parser.DefaultCharset,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{Charset: o.Charset}
}

func (o Options) markdownOptions() markdown.Options {
	return markdown.Options{EmptyMarker: o.EmptyMarker}
}
