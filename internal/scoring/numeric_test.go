package scoring

import "testing"

func TestMatchNumeric(t *testing.T) {
	cases := []struct {
		name  string
		op    NumericOperator
		value float64
		bound NumericValue
		want  bool
	}{
		{name: "gte above", op: OpGTE, value: 5, bound: Number(3), want: true},
		{name: "gte equal", op: OpGTE, value: 3, bound: Number(3), want: true},
		{name: "gte below", op: OpGTE, value: 2, bound: Number(3), want: false},
		{name: "lte equal", op: OpLTE, value: 3, bound: Number(3), want: true},
		{name: "gt equal", op: OpGT, value: 3, bound: Number(3), want: false},
		{name: "lt below", op: OpLT, value: 2, bound: Number(3), want: true},
		{name: "eq match", op: OpEQ, value: 3, bound: Number(3), want: true},
		{name: "range inside", op: OpRange, value: 5, bound: Range(3, 7), want: true},
		{name: "range bounds inclusive", op: OpRange, value: 7, bound: Range(3, 7), want: true},
		{name: "range outside", op: OpRange, value: 8, bound: Range(3, 7), want: false},
		{name: "unknown operator", op: NumericOperator("~="), value: 3, bound: Number(3), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := matchNumeric(c.op, c.value, c.bound); got != c.want {
				t.Fatalf("matchNumeric(%s, %v) = %v, want %v", c.op, c.value, got, c.want)
			}
		})
	}
}

func TestEvaluateNumericRules(t *testing.T) {
	rules := []NumericRule{
		{Field: "workYears", Operator: OpGTE, Value: Number(3), Weight: 2, Label: "3年以上经验"},
		{Field: "projectCount", Operator: OpGTE, Value: Number(5), Weight: 1, Label: "5个以上项目"},
	}

	candidate := &CandidateProfile{
		WorkYears:   4,
		ExtraFields: map[string]any{"projectCount": 6},
	}

	eval := evaluateNumericRules(rules, candidate)

	if eval.score != 15 {
		t.Fatalf("score = %v, want 15", eval.score)
	}

	if len(eval.matched) != 2 {
		t.Fatalf("expected 2 matched rules, got %+v", eval.matched)
	}

	if eval.matched[0].MatchedVia != "workYears=4" {
		t.Fatalf("unexpected provenance: %q", eval.matched[0].MatchedVia)
	}
}

func TestEvaluateNumericRulesSkipsUnresolvable(t *testing.T) {
	rules := []NumericRule{
		{Field: "salaryExpectation", Operator: OpLTE, Value: Number(30000), Weight: 2, Label: "期望薪资"},
		{Field: "education", Operator: OpGTE, Value: Number(1), Weight: 1, Label: "非数值字段"},
	}

	candidate := &CandidateProfile{Education: "本科"}

	// Missing field and non-coercible field both skip silently.
	eval := evaluateNumericRules(rules, candidate)

	if eval.score != 0 || len(eval.matched) != 0 {
		t.Fatalf("expected no matches, got score %v, matched %+v", eval.score, eval.matched)
	}
}
