package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Defaults applied when a rule set omits thresholds or multipliers.
var (
	DefaultGradeThresholds = GradeThresholds{A: 80, B: 60, C: 40, D: 0}
)

const (
	DefaultMustWeightMultiplier = 10
	DefaultNiceWeightMultiplier = 5
)

// ConfigError describes why a rule set was rejected at load time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid rule set: %s: %s", e.Field, e.Reason)
}

// Validate checks the construction-time invariants. A violation is fatal:
// no engine is created from an invalid rule set.
func (r *RuleSet) Validate() error {
	if r.Version == "" {
		return &ConfigError{Field: "version", Reason: "must not be empty"}
	}

	t := r.GradeThresholds
	if t.A < t.B || t.B < t.C || t.C < t.D {
		return &ConfigError{Field: "gradeThresholds", Reason: "must satisfy A >= B >= C >= D"}
	}

	return nil
}

// ParseRuleSet decodes a rule set from JSON, applying the default thresholds
// and multipliers for fields the document omits. The result is not validated.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	rules := newRuleSetWithDefaults()
	if err := json.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("parsing rule set: %w", err)
	}
	return rules, nil
}

// LoadRuleSetFile reads and decodes a rule-set JSON file.
func LoadRuleSetFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set file: %w", err)
	}
	return ParseRuleSet(data)
}

// DecodeRuleSet builds a rule set from an already-parsed generic map, such as
// a config section unmarshalled by viper. Keys follow the JSON field names.
func DecodeRuleSet(raw map[string]any) (*RuleSet, error) {
	rules := newRuleSetWithDefaults()

	cfg := &mapstructure.DecoderConfig{
		DecodeHook: numericValueHook,
		Result:     rules,
		TagName:    "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding rule set: %w", err)
	}

	return rules, nil
}

// numericValueHook converts plain numbers and two-element slices into
// NumericValue, mirroring the JSON wire form.
func numericValueHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(NumericValue{}) {
		return data, nil
	}

	if slice, ok := data.([]any); ok {
		if len(slice) != 2 {
			return nil, fmt.Errorf("numeric range needs exactly two elements, got %d", len(slice))
		}
		min, err := cast.ToFloat64E(slice[0])
		if err != nil {
			return nil, err
		}
		max, err := cast.ToFloat64E(slice[1])
		if err != nil {
			return nil, err
		}
		return Range(min, max), nil
	}

	n, err := cast.ToFloat64E(data)
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func newRuleSetWithDefaults() *RuleSet {
	return &RuleSet{
		GradeThresholds:      DefaultGradeThresholds,
		MustWeightMultiplier: DefaultMustWeightMultiplier,
		NiceWeightMultiplier: DefaultNiceWeightMultiplier,
	}
}

// DefaultRules returns an editable rule-set template for the given position.
func DefaultRules(positionTitle string) *RuleSet {
	return &RuleSet{
		Version:     "1.0.0",
		Description: fmt.Sprintf("%s 岗位评分规则", positionTitle),
		MustSkills: []SkillRule{
			{Skill: "JavaScript", Weight: 2},
			{Skill: "React", Weight: 3},
		},
		NiceSkills: []SkillRule{
			{Skill: "TypeScript", Weight: 2},
			{Skill: "Node.js", Weight: 1},
		},
		NumericRules: []NumericRule{
			{
				Field:    "workYears",
				Operator: OpGTE,
				Value:    Number(2),
				Weight:   2,
				Label:    "工作经验≥2年",
			},
		},
		EnumRules: []EnumRule{
			{
				Field:  "education",
				Values: []string{"本科", "硕士", "博士"},
				Weight: 1,
				Label:  "本科及以上学历",
			},
		},
		RejectRules: []RejectRule{
			{Keyword: "在校生", Penalty: 20, Description: "在校学生"},
			{Keyword: "实习", Penalty: 15, Description: "实习经历"},
		},
		GradeThresholds:      DefaultGradeThresholds,
		MustWeightMultiplier: DefaultMustWeightMultiplier,
		NiceWeightMultiplier: DefaultNiceWeightMultiplier,
		CreatedAt:            time.Now().Format(time.RFC3339),
	}
}
