package normalize

import "fmt"

// SchemaError reports that existential elimination needed a domain's
// constants but none were supplied (spec.md §4.1, §7).
type SchemaError struct {
	Domain string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("normalize: domain %q has no constants in the supplied mapping", e.Domain)
}
