package scoring

import (
	"strings"
	"testing"
)

func TestParseRuleSetAppliesDefaults(t *testing.T) {
	rules, err := ParseRuleSet([]byte(`{
		"version": "1.0.0",
		"mustSkills": [{"skill": "Go", "weight": 3}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rules.GradeThresholds != DefaultGradeThresholds {
		t.Fatalf("expected default thresholds, got %+v", rules.GradeThresholds)
	}

	if rules.MustWeightMultiplier != DefaultMustWeightMultiplier {
		t.Fatalf("expected default must multiplier, got %d", rules.MustWeightMultiplier)
	}

	if rules.NiceWeightMultiplier != DefaultNiceWeightMultiplier {
		t.Fatalf("expected default nice multiplier, got %d", rules.NiceWeightMultiplier)
	}
}

func TestParseRuleSetNumericValues(t *testing.T) {
	rules, err := ParseRuleSet([]byte(`{
		"version": "1.0.0",
		"numericRules": [
			{"field": "workYears", "operator": ">=", "value": 3, "weight": 2, "label": "经验"},
			{"field": "workYears", "operator": "range", "value": [3, 7], "weight": 1, "label": "区间"}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	single := rules.NumericRules[0].Value
	if single.IsRange || single.Single != 3 {
		t.Fatalf("unexpected single value: %+v", single)
	}

	bounds := rules.NumericRules[1].Value
	if !bounds.IsRange || bounds.Min != 3 || bounds.Max != 7 {
		t.Fatalf("unexpected range value: %+v", bounds)
	}
}

func TestParseRuleSetBadRange(t *testing.T) {
	_, err := ParseRuleSet([]byte(`{
		"version": "1.0.0",
		"numericRules": [
			{"field": "workYears", "operator": "range", "value": [3], "weight": 1, "label": "区间"}
		]
	}`))
	if err == nil {
		t.Fatalf("expected error for one-element range")
	}

	if !strings.Contains(err.Error(), "two elements") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeRuleSet(t *testing.T) {
	raw := map[string]any{
		"version": "3.1.0",
		"mustSkills": []any{
			map[string]any{"skill": "Go", "weight": 3},
		},
		"numericRules": []any{
			map[string]any{"field": "workYears", "operator": ">=", "value": 2, "weight": 2, "label": "经验"},
			map[string]any{"field": "workYears", "operator": "range", "value": []any{3, 7}, "weight": 1, "label": "区间"},
		},
		"gradeThresholds": map[string]any{"A": 85, "B": 70, "C": 50, "D": 0},
	}

	rules, err := DecodeRuleSet(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rules.Version != "3.1.0" {
		t.Fatalf("unexpected version: %s", rules.Version)
	}

	if rules.GradeThresholds.A != 85 {
		t.Fatalf("unexpected thresholds: %+v", rules.GradeThresholds)
	}

	if rules.MustWeightMultiplier != DefaultMustWeightMultiplier {
		t.Fatalf("expected default multiplier to survive decoding, got %d", rules.MustWeightMultiplier)
	}

	if v := rules.NumericRules[0].Value; v.IsRange || v.Single != 2 {
		t.Fatalf("unexpected single value: %+v", v)
	}

	if v := rules.NumericRules[1].Value; !v.IsRange || v.Min != 3 || v.Max != 7 {
		t.Fatalf("unexpected range value: %+v", v)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RuleSet)
		wantErr bool
	}{
		{name: "valid", mutate: func(*RuleSet) {}, wantErr: false},
		{
			name:    "empty version",
			mutate:  func(r *RuleSet) { r.Version = "" },
			wantErr: true,
		},
		{
			name:    "A below B",
			mutate:  func(r *RuleSet) { r.GradeThresholds = GradeThresholds{A: 50, B: 60, C: 40, D: 0} },
			wantErr: true,
		},
		{
			name:    "C below D",
			mutate:  func(r *RuleSet) { r.GradeThresholds = GradeThresholds{A: 80, B: 60, C: 10, D: 20} },
			wantErr: true,
		},
		{
			name:    "equal thresholds are allowed",
			mutate:  func(r *RuleSet) { r.GradeThresholds = GradeThresholds{A: 60, B: 60, C: 40, D: 0} },
			wantErr: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rules := testRules()
			c.mutate(rules)

			err := rules.Validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules("前端工程师")

	if err := rules.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}

	if !strings.Contains(rules.Description, "前端工程师") {
		t.Fatalf("expected position in description, got %q", rules.Description)
	}

	if _, err := New(rules, nil); err != nil {
		t.Fatalf("default rules rejected by engine: %v", err)
	}
}
