// Package pokedex runs the per-generation PokeAPI pipeline.
//
// Groups are processed in order and IDs within a group ascending, one blocking
// fetch at a time with a fixed pause after every attempt. A failed ID is
// logged, counted and skipped; it never aborts its group. Once every group is
// collected, Write produces one workbook with a sheet per group and one CSV
// per group.
package pokedex
