// Package export writes tables to disk as CSV files and XLSX workbooks.
//
// Every write creates or truncates its target; nothing is appended and no
// partially written file is cleaned up on failure. Files land in a single
// output directory, created on demand, with a leading "~/" expanded to the
// user's home directory.
package export
