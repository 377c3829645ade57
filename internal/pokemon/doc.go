// Package pokemon defines the flattened Pokémon record written to the
// per-generation exports, along with its fixed column schema.
package pokemon
