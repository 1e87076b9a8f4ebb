package schema

import "github.com/mlnforge/clausecore/pkg/formula"

// AtomID identifies a ground atom within an evidence database.  Its
// concrete representation is the evidence collaborator's choice; this
// core only ever threads it through opaquely.
type AtomID uint64

// EvidenceDB decodes ground atom identifiers for a single predicate
// signature into their ordered constant arguments (spec.md §3, §6).
type EvidenceDB interface {
	Decode(id AtomID) ([]string, error)
}

// Evidence maps a predicate signature to the evidence database serving
// atoms of that signature.
type Evidence map[formula.Signature]EvidenceDB

// Decode looks up the database for sig and decodes id, reporting whether
// a database was registered for sig at all.
func (e Evidence) Decode(sig formula.Signature, id AtomID) ([]string, bool, error) {
	db, ok := e[sig]
	if !ok {
		return nil, false, nil
	}

	consts, err := db.Decode(id)

	return consts, true, err
}

// MapEvidenceDB is a trivial in-memory EvidenceDB backed by a map, useful
// for tests and for callers with a fully materialized evidence set
// (spec.md §5: "the evidence database's decode is in-memory").
type MapEvidenceDB map[AtomID][]string

// Decode implements EvidenceDB.
func (m MapEvidenceDB) Decode(id AtomID) ([]string, error) {
	consts, ok := m[id]
	if !ok {
		return nil, errUnknownAtom(id)
	}

	return consts, nil
}

type errUnknownAtom AtomID

func (e errUnknownAtom) Error() string {
	return "evidence: no such atom id"
}
