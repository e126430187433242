package scoring

import "strings"

// rejectEvaluation is the immutable outcome of the reject rule category.
// Every rule is checked independently and all penalties accumulate.
type rejectEvaluation struct {
	penalty float64
	matched []string
}

func evaluateRejectRules(rules []RejectRule, rawText string) rejectEvaluation {
	eval := rejectEvaluation{matched: make([]string, 0, len(rules))}
	text := strings.ToLower(rawText)

	for _, rule := range rules {
		if !strings.Contains(text, strings.ToLower(rule.Keyword)) {
			continue
		}

		eval.matched = append(eval.matched, rule.Keyword)
		eval.penalty += float64(rule.Penalty)
	}

	return eval
}
