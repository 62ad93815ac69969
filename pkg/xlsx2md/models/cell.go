// Package models defines the in-memory workbook read from a spreadsheet file.
package models

import "fmt"

// Cell holds a single cell value. A nil Value is an empty cell.
type Cell struct {
	// Value is one of string, int64, float64, bool or nil.
	Value interface{}
}

// Text returns the display text of the cell: "" for an empty cell and the
// default string form of the underlying value otherwise. Number formats,
// date formats and other display styling are not applied.
func (c Cell) Text() string {
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value)
}

// IsEmpty reports whether the cell has no stored value.
func (c Cell) IsEmpty() bool {
	return c.Value == nil
}

// Row is an ordered sequence of cells. Rows of one sheet may differ in length.
type Row []Cell

// Texts returns the display text of each cell, right-padded with "" up to
// width. Rows longer than width are returned in full.
func (r Row) Texts(width int) []string {
	n := len(r)
	if width > n {
		n = width
	}
	out := make([]string, n)
	for i, c := range r {
		out[i] = c.Text()
	}
	return out
}
