package core

import (
	"math/rand"
	"strings"

	"github.com/augur-cli/augur/schema"
)

// Norm maps any integer onto a trigram number in [1,8] via wraparound.
// Well-defined for negatives and arbitrarily large sums.
func Norm(n int) int {
	m := (n - 1) % 8
	if m < 0 {
		m += 8
	}
	return m + 1
}

// CastParams carries the method-specific casting inputs.
type CastParams struct {
	Year  int
	Month int
	Day   int
	Hour  int

	Direction string
}

// Cast derives the upper, lower and mutation trigrams for the given
// method. The time method is fully deterministic; the direction method
// draws the lower trigram from rng, and the random method draws both.
// The mutation trigram always takes one die roll from rng, so repeated
// casts differ unless rng is seeded.
func Cast(method schema.CastMethod, params CastParams, rng *rand.Rand) schema.CastResult {
	var upper, lower int
	var basis schema.CastBasis

	switch method {
	case schema.TimeMethod:
		upper = Norm(params.Year + params.Month + params.Day)
		lower = Norm(params.Year + params.Month + params.Day + params.Hour)
		basis = schema.CastBasis{
			Year:  params.Year,
			Month: params.Month,
			Day:   params.Day,
			Hour:  params.Hour,
		}

	case schema.DirectionMethod:
		term := strings.ToLower(strings.TrimSpace(params.Direction))
		code := DirectionCode(term)
		upper = Norm(code)
		lower = roll(rng, 8)
		basis = schema.CastBasis{Direction: term, DirectionCode: code}

	default: // RandomMethod
		upper = roll(rng, 8)
		lower = roll(rng, 8)
		basis = schema.CastBasis{Random: true}
	}

	mutation := Norm(upper + lower + roll(rng, 6))

	return schema.CastResult{
		Method:   method,
		Upper:    schema.TrigramByNumber(upper),
		Lower:    schema.TrigramByNumber(lower),
		Mutation: schema.TrigramByNumber(mutation),
		Basis:    basis,
	}
}

// DirectionCode resolves a direction term to its casting number.
// Unrecognized terms default to the neutral code rather than erroring;
// strict validation is the caller's responsibility.
func DirectionCode(term string) int {
	if code, ok := schema.DirectionCodes[term]; ok {
		return code
	}
	return schema.DefaultDirectionCode
}

// roll draws uniformly from [1,n].
func roll(rng *rand.Rand, n int) int {
	return rng.Intn(n) + 1
}
