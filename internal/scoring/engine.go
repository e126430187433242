package scoring

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Engine scores candidate profiles against a validated rule set. The rule
// set is read-only after construction, so a single engine may serve any
// number of concurrent Score calls without coordination.
type Engine struct {
	rules  *RuleSet
	logger *zap.Logger
}

// New validates the rule set and constructs an engine. An invalid rule set
// yields a *ConfigError and no engine; there is no partially-built state.
// The logger is optional and only used for recoverable scoring-time issues
// such as invalid regex patterns.
func New(rules *RuleSet, logger *zap.Logger) (*Engine, error) {
	if rules == nil {
		return nil, &ConfigError{Field: "rules", Reason: "rule set is required"}
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &Engine{rules: rules, logger: logger}, nil
}

// Score evaluates one candidate. It always returns a complete result: a
// sparse profile degrades the score, it never aborts the evaluation.
func (e *Engine) Score(candidate *CandidateProfile) *Result {
	scoredAt := time.Now().Format(time.RFC3339)

	skills := make(map[string]struct{}, len(candidate.Skills))
	for _, s := range candidate.Skills {
		skills[strings.ToLower(s)] = struct{}{}
	}
	rawText := strings.ToLower(candidate.RawText)

	// The four categories are independent; their evaluation order does not
	// affect the result.
	must := evaluateSkills(e.rules.MustSkills, e.rules.MustWeightMultiplier, skills, rawText, e.logger)
	nice := evaluateSkills(e.rules.NiceSkills, e.rules.NiceWeightMultiplier, skills, rawText, e.logger)
	numeric := evaluateNumericRules(e.rules.NumericRules, candidate)
	enum := evaluateEnumRules(e.rules.EnumRules, candidate)
	reject := evaluateRejectRules(e.rules.RejectRules, candidate.RawText)

	// Clamping is the final aggregation step: penalties can zero a score
	// but never push it negative.
	totalScore := must.score + nice.score + numeric.score + enum.score - reject.penalty
	totalScore = math.Min(100, math.Max(0, totalScore))

	grade := determineGrade(totalScore, e.rules.GradeThresholds)
	risks := identifyRisks(candidate, must, reject, totalScore, e.rules.GradeThresholds)
	explanation := buildExplanation(e.rules, totalScore, grade, must, nice, reject, risks)
	summary := buildSummary(totalScore, grade, len(risks))

	return &Result{
		TotalScore: round1(totalScore),
		Grade:      grade,

		MustScore:     round1(must.score),
		NiceScore:     round1(nice.score),
		NumericScore:  round1(numeric.score),
		EnumScore:     round1(enum.score),
		RejectPenalty: round1(reject.penalty),

		MatchedMust:    must.matched,
		MatchedNice:    nice.matched,
		MatchedNumeric: numeric.matched,
		MatchedEnum:    enum.matched,
		MatchedReject:  reject.matched,

		MissingMust: must.missing,
		MissingNice: nice.missing,

		Risks: risks,

		Explanation: explanation,
		Summary:     summary,

		RuleVersion: e.rules.Version,
		ScoredAt:    scoredAt,
	}
}

// Version returns the active rule-set version.
func (e *Engine) Version() string {
	return e.rules.Version
}

// ExportRules serializes the active rule set, e.g. for audit logging or
// diffing. The output re-parses into an identically scoring rule set.
func (e *Engine) ExportRules() ([]byte, error) {
	return json.MarshalIndent(e.rules, "", "  ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
