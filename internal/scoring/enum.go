package scoring

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// enumEvaluation is the immutable outcome of the enum rule category. Like
// numeric rules, an absent or empty field skips the rule silently.
type enumEvaluation struct {
	score   float64
	matched []MatchedItem
}

func evaluateEnumRules(rules []EnumRule, candidate *CandidateProfile) enumEvaluation {
	eval := enumEvaluation{matched: make([]MatchedItem, 0, len(rules))}

	for _, rule := range rules {
		raw, ok := candidate.Field(rule.Field)
		if !ok || raw == nil {
			continue
		}

		value, err := cast.ToStringE(raw)
		if err != nil || value == "" {
			continue
		}

		if !containsFold(rule.Values, value) {
			continue
		}

		itemScore := float64(rule.Weight * fieldRuleMultiplier)
		eval.score += itemScore
		eval.matched = append(eval.matched, MatchedItem{
			Name:       rule.Label,
			Weight:     rule.Weight,
			Score:      itemScore,
			MatchedVia: fmt.Sprintf("%s=%s", rule.Field, value),
		})
	}

	return eval
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
