package variabilize

import (
	"fmt"

	"github.com/mlnforge/clausecore/pkg/formula"
	"github.com/mlnforge/clausecore/pkg/schema"
)

// MissingSchema reports that a path element referenced a signature absent
// from the predicate schema (spec.md §4.5, §7).
type MissingSchema struct {
	Signature formula.Signature
}

// Error implements the error interface.
func (e *MissingSchema) Error() string {
	return fmt.Sprintf("variabilize: no schema entry for signature %s", e.Signature)
}

// EvidenceDecodeError reports that the evidence database refused to decode
// a ground atom, or that no database was registered for its signature at
// all (spec.md §4.5, §7).
type EvidenceDecodeError struct {
	Signature formula.Signature
	AtomID    schema.AtomID
	Cause     error
}

// Error implements the error interface.
func (e *EvidenceDecodeError) Error() string {
	return fmt.Sprintf("variabilize: failed to decode atom %d of signature %s: %v", e.AtomID, e.Signature, e.Cause)
}

// Unwrap exposes the underlying evidence-database error, if any.
func (e *EvidenceDecodeError) Unwrap() error {
	return e.Cause
}

var errNoEvidenceDB = fmt.Errorf("variabilize: no evidence database registered for this signature")
