// Package cli implements the command-line interface for pokedata.
//
// The cli package provides the Cobra-based CLI with two commands: pokedex,
// which collects Pokémon from PokeAPI per generation into a workbook and CSV
// files, and standings, which scrapes one tournament standings page into a
// CSV file. It resolves configuration, wires the logger, runs the pipeline
// and prints a text or JSON summary to stdout.
package cli
