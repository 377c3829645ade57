// Package standings defines one row of a tournament standings export.
package standings
