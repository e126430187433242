package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MatchType selects the matching semantics of a skill rule.
type MatchType string

const (
	MatchKeyword MatchType = "keyword"
	MatchRegex   MatchType = "regex"
)

// NumericOperator is the comparison applied by a numeric rule.
type NumericOperator string

const (
	OpGTE   NumericOperator = ">="
	OpLTE   NumericOperator = "<="
	OpGT    NumericOperator = ">"
	OpLT    NumericOperator = "<"
	OpEQ    NumericOperator = "="
	OpRange NumericOperator = "range"
)

// Grade is the letter band a total score falls into.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// RiskType classifies a finding emitted by the risk analyzer.
type RiskType string

const (
	RiskRejectKeyword RiskType = "reject_keyword"
	RiskMissingMust   RiskType = "missing_must"
	RiskLowExperience RiskType = "low_experience"
	// RiskLowEducation is part of the taxonomy but is not emitted by the
	// default analyzer. Kept as an extension point for custom analyzers.
	RiskLowEducation RiskType = "low_education"
	RiskOther        RiskType = "other"
)

// RiskSeverity ranks how serious a risk finding is.
type RiskSeverity string

const (
	SeverityHigh   RiskSeverity = "high"
	SeverityMedium RiskSeverity = "medium"
	SeverityLow    RiskSeverity = "low"
)

// Provenance tags recorded in MatchedItem.MatchedVia for skill rules.
// Numeric and enum rules record a "field=value" pair instead.
const (
	ViaSkillsList = "skills_list"
	ViaRawText    = "raw_text"
	ViaRegex      = "regex"
)

// SkillRule describes a single must or nice skill requirement. An empty
// MatchType means keyword matching. Pattern is consulted only for regex rules.
type SkillRule struct {
	Skill     string    `json:"skill"`
	Weight    int       `json:"weight"`
	MatchType MatchType `json:"matchType,omitempty"`
	Pattern   string    `json:"pattern,omitempty"`
}

// NumericValue holds the right-hand side of a numeric rule: a single number
// for comparison operators, or an inclusive [min, max] pair for range rules.
type NumericValue struct {
	Single  float64
	Min     float64
	Max     float64
	IsRange bool
}

// Number returns a single-valued NumericValue.
func Number(n float64) NumericValue {
	return NumericValue{Single: n}
}

// Range returns an inclusive [min, max] NumericValue.
func Range(min, max float64) NumericValue {
	return NumericValue{Min: min, Max: max, IsRange: true}
}

// UnmarshalJSON accepts either a bare number or a two-element [min, max] array.
func (v *NumericValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("numeric range needs exactly two elements, got %d", len(pair))
		}
		*v = Range(pair[0], pair[1])
		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*v = Number(n)
	return nil
}

// MarshalJSON emits the wire form accepted by UnmarshalJSON.
func (v NumericValue) MarshalJSON() ([]byte, error) {
	if v.IsRange {
		return json.Marshal([2]float64{v.Min, v.Max})
	}
	return json.Marshal(v.Single)
}

// NumericRule scores a numeric candidate field against a bound. Field is
// resolved through the candidate's fixed attributes first, then extraFields.
type NumericRule struct {
	Field    string          `json:"field"`
	Operator NumericOperator `json:"operator"`
	Value    NumericValue    `json:"value"`
	Weight   int             `json:"weight"`
	Label    string          `json:"label"`
}

// EnumRule scores a categorical candidate field against a set of accepted
// values. Comparison is case-insensitive.
type EnumRule struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
	Weight int      `json:"weight"`
	Label  string   `json:"label"`
}

// RejectRule subtracts a penalty when its keyword appears in the raw text.
type RejectRule struct {
	Keyword     string `json:"keyword"`
	Penalty     int    `json:"penalty"`
	Description string `json:"description,omitempty"`
}

// GradeThresholds are the four cutoffs partitioning [0,100] into bands.
// They must satisfy A >= B >= C >= D.
type GradeThresholds struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
}

// RuleSet is a versioned, declarative screening configuration. It is
// validated once at engine construction and read-only afterwards.
type RuleSet struct {
	Version              string          `json:"version"`
	MustSkills           []SkillRule     `json:"mustSkills,omitempty"`
	NiceSkills           []SkillRule     `json:"niceSkills,omitempty"`
	NumericRules         []NumericRule   `json:"numericRules,omitempty"`
	EnumRules            []EnumRule      `json:"enumRules,omitempty"`
	RejectRules          []RejectRule    `json:"rejectRules,omitempty"`
	GradeThresholds      GradeThresholds `json:"gradeThresholds"`
	MustWeightMultiplier int             `json:"mustWeightMultiplier"`
	NiceWeightMultiplier int             `json:"niceWeightMultiplier"`
	Description          string          `json:"description,omitempty"`
	CreatedAt            string          `json:"createdAt,omitempty"`
}

// MatchedItem records one satisfied rule and its score contribution.
type MatchedItem struct {
	Name       string  `json:"name"`
	Weight     int     `json:"weight"`
	Score      float64 `json:"score"`
	MatchedVia string  `json:"matchedVia,omitempty"`
}

// MissingItem records one unsatisfied must/nice rule and the score it would
// have contributed.
type MissingItem struct {
	Name           string  `json:"name"`
	Weight         int     `json:"weight"`
	PotentialScore float64 `json:"potentialScore"`
}

// RiskItem is a structured finding surfaced alongside the score.
type RiskItem struct {
	Type        RiskType     `json:"type"`
	Severity    RiskSeverity `json:"severity"`
	Description string       `json:"description"`
	Impact      string       `json:"impact"`
}

// Result is the full outcome of scoring one candidate against one rule set.
// It references the rule set only through RuleVersion, so results remain
// comparable across rule-set revisions.
type Result struct {
	TotalScore float64 `json:"totalScore"`
	Grade      Grade   `json:"grade"`

	MustScore     float64 `json:"mustScore"`
	NiceScore     float64 `json:"niceScore"`
	NumericScore  float64 `json:"numericScore"`
	EnumScore     float64 `json:"enumScore"`
	RejectPenalty float64 `json:"rejectPenalty"`

	MatchedMust    []MatchedItem `json:"matchedMust"`
	MatchedNice    []MatchedItem `json:"matchedNice"`
	MatchedNumeric []MatchedItem `json:"matchedNumeric"`
	MatchedEnum    []MatchedItem `json:"matchedEnum"`
	MatchedReject  []string      `json:"matchedReject"`

	MissingMust []MissingItem `json:"missingMust"`
	MissingNice []MissingItem `json:"missingNice"`

	Risks []RiskItem `json:"risks"`

	Explanation string `json:"explanation"`
	Summary     string `json:"summary"`

	RuleVersion string `json:"ruleVersion"`
	ScoredAt    string `json:"scoredAt"`
}
