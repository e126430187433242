package scoring

import (
	"fmt"

	"github.com/spf13/cast"
)

// Numeric and enum contributions use a fixed multiplier, independent of the
// must/nice weight multipliers.
const fieldRuleMultiplier = 5

// numericEvaluation is the immutable outcome of the numeric rule category.
// Numeric rules have no missing bucket: an unresolvable or non-coercible
// field skips the rule entirely.
type numericEvaluation struct {
	score   float64
	matched []MatchedItem
}

func evaluateNumericRules(rules []NumericRule, candidate *CandidateProfile) numericEvaluation {
	eval := numericEvaluation{matched: make([]MatchedItem, 0, len(rules))}

	for _, rule := range rules {
		raw, ok := candidate.Field(rule.Field)
		if !ok || raw == nil {
			continue
		}

		value, err := cast.ToFloat64E(raw)
		if err != nil {
			continue
		}

		if !matchNumeric(rule.Operator, value, rule.Value) {
			continue
		}

		itemScore := float64(rule.Weight * fieldRuleMultiplier)
		eval.score += itemScore
		eval.matched = append(eval.matched, MatchedItem{
			Name:       rule.Label,
			Weight:     rule.Weight,
			Score:      itemScore,
			MatchedVia: fmt.Sprintf("%s=%v", rule.Field, value),
		})
	}

	return eval
}

func matchNumeric(op NumericOperator, value float64, bound NumericValue) bool {
	switch op {
	case OpGTE:
		return value >= bound.Single
	case OpLTE:
		return value <= bound.Single
	case OpGT:
		return value > bound.Single
	case OpLT:
		return value < bound.Single
	case OpEQ:
		return value == bound.Single
	case OpRange:
		return bound.Min <= value && value <= bound.Max
	}
	return false
}
