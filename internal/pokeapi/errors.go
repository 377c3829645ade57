package pokeapi

import "fmt"

// StatusError reports a non-200 response for one Pokémon ID.
type StatusError struct {
	ID         int
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi: pokemon %d: unexpected status %d", e.ID, e.StatusCode)
}

// ShapeError reports a 200 response whose body could not be shaped into a
// record: undecodable JSON, a missing required field or a mismatched ID.
type ShapeError struct {
	ID    int
	Field string
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pokeapi: pokemon %d: malformed payload (%s): %v", e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("pokeapi: pokemon %d: malformed payload: missing %s", e.ID, e.Field)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
