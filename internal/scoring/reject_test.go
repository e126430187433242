package scoring

import "testing"

func TestEvaluateRejectRules(t *testing.T) {
	rules := []RejectRule{
		{Keyword: "在校生", Penalty: 20},
		{Keyword: "实习", Penalty: 15},
		{Keyword: "转行", Penalty: 10},
	}

	cases := []struct {
		name    string
		rawText string
		penalty float64
		matched int
	}{
		{name: "no keywords", rawText: "资深后端工程师", penalty: 0, matched: 0},
		{name: "single keyword", rawText: "有过实习经历", penalty: 15, matched: 1},
		{name: "penalties accumulate", rawText: "在校生，正在找实习", penalty: 35, matched: 2},
		{name: "empty text", rawText: "", penalty: 0, matched: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eval := evaluateRejectRules(rules, c.rawText)
			if eval.penalty != c.penalty {
				t.Fatalf("penalty = %v, want %v", eval.penalty, c.penalty)
			}
			if len(eval.matched) != c.matched {
				t.Fatalf("matched = %v, want %d keywords", eval.matched, c.matched)
			}
		})
	}
}

func TestEvaluateRejectRulesCaseInsensitive(t *testing.T) {
	rules := []RejectRule{{Keyword: "Intern", Penalty: 15}}

	eval := evaluateRejectRules(rules, "software engineering INTERN at a startup")

	if eval.penalty != 15 {
		t.Fatalf("expected case-insensitive keyword hit, got penalty %v", eval.penalty)
	}
}
