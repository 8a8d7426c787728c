package core

import (
	"fmt"
	"strings"

	"github.com/augur-cli/augur/schema"
)

// Disclaimer is attached to every verdict.
const Disclaimer = "Readings are for reflection only; outcomes still depend on your own effort."

// spiritRule binds a keyword group to a target spirit. Rules are evaluated
// in declaration order with fixed priority; the first match wins.
type spiritRule struct {
	role     schema.SpiritRole
	element  schema.Element
	keywords []string
}

// spiritRules scan the question for what it concerns. The original
// audience of the tool asks in Chinese, so both English and Chinese terms
// are matched.
var spiritRules = []spiritRule{
	{schema.WealthSpirit, schema.Earth, []string{"wealth", "money", "income", "profit", "财", "钱", "收入", "盈利"}},
	{schema.CareerSpirit, schema.Metal, []string{"career", "promotion", "job", "official", "官", "升职", "事业"}},
	{schema.StudySpirit, schema.Fire, []string{"study", "exam", "test", "学", "考", "试"}},
}

// spiritAdvice gives the seasonal and directional affinity of each element.
var spiritAdvice = map[schema.Element]string{
	schema.Wood:  "The target spirit is wood: favorable toward the east and in spring.",
	schema.Fire:  "The target spirit is fire: favorable toward the south and in summer.",
	schema.Earth: "The target spirit is earth: favorable toward the center and in the transitional months.",
	schema.Metal: "The target spirit is metal: favorable toward the west and in autumn.",
	schema.Water: "The target spirit is water: favorable toward the north and in winter.",
}

// ComposeReading combines a cast result, the element-relation judgement
// and keyword analysis of the question into a structured verdict.
//
// The relation reported in the verdict is the one between the upper and
// lower trigram elements. The target spirit element is deliberately not
// part of that computation; it is surfaced as advisory text only.
func ComposeReading(question string, cast schema.CastResult) schema.Reading {
	relation := Classify(cast.Upper.Element, cast.Lower.Element)
	judgement := schema.Judgement{
		Relation: relation,
		Tier:     schema.TierFor(relation),
		Summary:  relationSummary(relation, cast.Upper.Element, cast.Lower.Element),
	}

	return schema.Reading{
		Question:  question,
		Cast:      cast,
		Judgement: judgement,
		Spirit:    targetSpirit(question, cast.Upper),
		Verdict:   composeVerdict(judgement.Tier, cast.Mutation),
	}
}

// targetSpirit selects the element the question concerns. No keyword match
// falls back to the upper trigram's own element.
func targetSpirit(question string, upper schema.Trigram) schema.TargetSpirit {
	q := strings.ToLower(question)
	for _, rule := range spiritRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return schema.TargetSpirit{Role: rule.role, Element: rule.element, Advice: spiritAdvice[rule.element]}
			}
		}
	}
	return schema.TargetSpirit{Role: schema.GeneralSpirit, Element: upper.Element, Advice: spiritAdvice[upper.Element]}
}

// relationSummary describes the relation between the upper and lower
// trigram elements in one sentence.
func relationSummary(relation schema.Relation, upper, lower schema.Element) string {
	switch relation {
	case schema.ParityRelation:
		return fmt.Sprintf("Both trigrams are %s; the elements match and support each other.", upper)
	case schema.GeneratingRelation:
		return fmt.Sprintf("%s generates %s: the upper trigram nourishes the lower.", upper, lower)
	case schema.RestrainingRelation:
		return fmt.Sprintf("%s restrains %s: the upper trigram suppresses the lower.", upper, lower)
	case schema.GeneratedByRelation:
		return fmt.Sprintf("%s generates %s: the lower trigram nourishes the upper.", lower, upper)
	case schema.RestrainedByRelation:
		return fmt.Sprintf("%s restrains %s: the lower trigram suppresses the upper.", lower, upper)
	default:
		return "The elements share no direct relation."
	}
}

// composeVerdict selects the narrative text and advice by tier, always
// referencing the mutation trigram.
func composeVerdict(tier schema.Tier, mutation schema.Trigram) schema.Verdict {
	var explanation, advice string
	switch tier {
	case schema.AuspiciousTier:
		explanation = "The elements generate one another; the primary trigrams are favorable and matters trend toward improvement."
		advice = "Seize the moment and act decisively."
	case schema.InauspiciousTier:
		explanation = "The elements restrain one another; the primary trigrams are unfavorable and matters may meet obstruction."
		advice = "Wait for a better moment and act with caution."
	default:
		explanation = "The elements are in balance; matters develop steadily."
		advice = "Proceed step by step on solid ground."
	}
	explanation += fmt.Sprintf(" The mutation trigram %s signals change to watch.", mutation.Name)

	return schema.Verdict{
		Tier:        tier,
		Explanation: explanation,
		Advice:      advice,
		Disclaimer:  Disclaimer,
	}
}
