// Package pokeapi fetches Pokémon from the public PokeAPI REST service and
// shapes each response into a pokemon.Record.
//
// One call to FetchPokemon issues exactly one GET request. There is no retry,
// no backoff and no caching; pacing between requests is the caller's job.
// Failures come back as typed errors so callers can tell an upstream status
// (*StatusError) from a response that decoded but lacks required fields
// (*ShapeError).
package pokeapi
