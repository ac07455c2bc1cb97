// Package report renders the encode, index, and replay commands' summaries
// as aligned tables, using github.com/jedib0t/go-pretty/v6/table for the
// layout so output stays readable across terminal widths.
package report
