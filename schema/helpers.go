package schema

import "math"

// TrigramByNumber returns the trigram for a number in [1,8]. Numbers
// outside the table yield a sentinel trigram rather than a panic; callers
// normalize indices first so this is a defensive path only.
func TrigramByNumber(n int) Trigram {
	if t, ok := Trigrams[n]; ok {
		return t
	}
	return Trigram{Number: n, Name: "Unknown", Symbol: "?", Element: "", Direction: "unknown", Nature: "unknown"}
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// Favorable reports whether a relation is favorable (one side generates
// the other).
func (r Relation) Favorable() bool {
	return r == GeneratingRelation || r == GeneratedByRelation
}

// Unfavorable reports whether a relation is unfavorable (one side
// restrains the other).
func (r Relation) Unfavorable() bool {
	return r == RestrainingRelation || r == RestrainedByRelation
}

// TierFor maps an elemental relation onto a verdict tier.
func TierFor(r Relation) Tier {
	switch {
	case r.Favorable():
		return AuspiciousTier
	case r.Unfavorable():
		return InauspiciousTier
	default:
		return BalancedTier
	}
}
