// Package schema has configs, models and static tables for all parts of augur.
package schema

// Trigram represents one of the eight symbolic three-line figures.
// Attributes are immutable; two trigrams may share an element.
type Trigram struct {
	Number    int     `json:"number"`    // Identity in [1,8]
	Name      string  `json:"name"`      // Romanized name (e.g. "Qian")
	Symbol    string  `json:"symbol"`    // Unicode trigram glyph
	Element   Element `json:"element"`   // Elemental class
	Direction string  `json:"direction"` // Compass attribute
	Nature    string  `json:"nature"`    // Natural image (heaven, lake, ...)
}

// CastBasis preserves the exact inputs used by the chosen casting method so
// a renderer can reproduce the arithmetic shown to the user.
type CastBasis struct {
	Year          int    `json:"year,omitempty"`
	Month         int    `json:"month,omitempty"`
	Day           int    `json:"day,omitempty"`
	Hour          int    `json:"hour,omitempty"`
	Direction     string `json:"direction,omitempty"`
	DirectionCode int    `json:"direction_code,omitempty"`
	Random        bool   `json:"random,omitempty"`
}

// CastResult bundles the trigrams derived by a single casting.
type CastResult struct {
	Method   CastMethod `json:"method"`
	Upper    Trigram    `json:"upper"`
	Lower    Trigram    `json:"lower"`
	Mutation Trigram    `json:"mutation"`
	Basis    CastBasis  `json:"basis"`
}

// Judgement is the elemental relation between the upper and lower trigram
// elements, with a human-readable summary.
type Judgement struct {
	Relation Relation `json:"relation"`
	Tier     Tier     `json:"tier"`
	Summary  string   `json:"summary"`
}

// TargetSpirit is the keyword-selected element representing what the
// question concerns. It is surfaced as advisory text only; the verdict's
// relation is computed between the two primary trigram elements.
type TargetSpirit struct {
	Role    SpiritRole `json:"role"`
	Element Element    `json:"element"`
	Advice  string     `json:"advice"`
}

// Verdict is the composed outcome of a reading.
type Verdict struct {
	Tier        Tier   `json:"tier"`
	Explanation string `json:"explanation"`
	Advice      string `json:"advice"`
	Disclaimer  string `json:"disclaimer"`
}

// OracleResult is the outcome of one oracle invocation: the filled prompt
// and the replies collected across repeats.
type OracleResult struct {
	Template string   `json:"template"`
	Prompt   string   `json:"prompt"`
	Model    string   `json:"model"`
	Replies  []string `json:"replies"`
}

// Reading is the full structured result of a divination request.
type Reading struct {
	Question  string       `json:"question"`
	Cast      CastResult   `json:"cast"`
	Judgement Judgement    `json:"judgement"`
	Spirit    TargetSpirit `json:"target_spirit"`
	Verdict   Verdict      `json:"verdict"`
}
