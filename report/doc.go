// Package report exports computed district stats as votes.json (the
// precomputed input format) or as an XLSX workbook.
package report
