package cli

import "fmt"

// NotFoundError reports an id the board does not contain. The reducer treats
// unknown ids as no-ops; the CLI reports them so scripts notice typos.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func errNotFound(kind, id string) error {
	return NotFoundError{Kind: kind, ID: id}
}
