package core

import "github.com/augur-cli/augur/schema"

// Classify resolves the elemental relation of an ordered pair. The checks
// run in fixed priority: parity, then generation and restraint from e1's
// side, then from e2's side. The unrelated fallback is unreachable for a
// total 5-cycle but kept as a defensive case.
func Classify(e1, e2 schema.Element) schema.Relation {
	switch {
	case e1 == e2:
		return schema.ParityRelation
	case schema.Generates[e1] == e2:
		return schema.GeneratingRelation
	case schema.Restrains[e1] == e2:
		return schema.RestrainingRelation
	case schema.Generates[e2] == e1:
		return schema.GeneratedByRelation
	case schema.Restrains[e2] == e1:
		return schema.RestrainedByRelation
	default:
		return schema.UnrelatedRelation
	}
}
