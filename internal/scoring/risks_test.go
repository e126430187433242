package scoring

import (
	"strings"
	"testing"
)

func riskTypes(risks []RiskItem) []RiskType {
	types := make([]RiskType, 0, len(risks))
	for _, r := range risks {
		types = append(types, r.Type)
	}
	return types
}

func hasRisk(risks []RiskItem, want RiskType) bool {
	for _, r := range risks {
		if r.Type == want {
			return true
		}
	}
	return false
}

func TestIdentifyRisksAllCategories(t *testing.T) {
	must := skillEvaluation{
		missing: []MissingItem{
			{Name: "React", Weight: 3, PotentialScore: 30},
			{Name: "CSS", Weight: 1, PotentialScore: 10},
		},
	}
	reject := rejectEvaluation{penalty: 20, matched: []string{"在校生"}}

	risks := identifyRisks(&CandidateProfile{WorkYears: 0}, must, reject, 10, DefaultGradeThresholds)

	if len(risks) != 4 {
		t.Fatalf("expected 4 risks, got %v", riskTypes(risks))
	}

	for _, want := range []RiskType{RiskRejectKeyword, RiskMissingMust, RiskLowExperience, RiskOther} {
		if !hasRisk(risks, want) {
			t.Fatalf("expected risk %s in %v", want, riskTypes(risks))
		}
	}
}

func TestIdentifyRisksMissingMustWeightCutoff(t *testing.T) {
	// Only weight >= 3 misses are critical.
	must := skillEvaluation{
		missing: []MissingItem{
			{Name: "CSS", Weight: 1},
			{Name: "HTML", Weight: 2},
		},
	}

	risks := identifyRisks(&CandidateProfile{WorkYears: 5}, must, rejectEvaluation{}, 80, DefaultGradeThresholds)

	if hasRisk(risks, RiskMissingMust) {
		t.Fatalf("low-weight misses should not raise missing_must: %v", riskTypes(risks))
	}
}

func TestIdentifyRisksLowExperienceSeverity(t *testing.T) {
	cases := []struct {
		name      string
		workYears float64
		severity  RiskSeverity
	}{
		{name: "zero years is high", workYears: 0, severity: SeverityHigh},
		{name: "one year is medium", workYears: 1, severity: SeverityMedium},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			risks := identifyRisks(&CandidateProfile{WorkYears: c.workYears}, skillEvaluation{}, rejectEvaluation{}, 80, DefaultGradeThresholds)

			for _, r := range risks {
				if r.Type != RiskLowExperience {
					continue
				}
				if r.Severity != c.severity {
					t.Fatalf("severity = %s, want %s", r.Severity, c.severity)
				}
				return
			}
			t.Fatalf("expected low_experience risk, got %v", riskTypes(risks))
		})
	}
}

func TestIdentifyRisksNoneForStrongCandidate(t *testing.T) {
	risks := identifyRisks(&CandidateProfile{WorkYears: 5}, skillEvaluation{}, rejectEvaluation{}, 85, DefaultGradeThresholds)

	if len(risks) != 0 {
		t.Fatalf("expected no risks, got %v", riskTypes(risks))
	}
}

func TestIdentifyRisksBelowPassline(t *testing.T) {
	risks := identifyRisks(&CandidateProfile{WorkYears: 5}, skillEvaluation{}, rejectEvaluation{}, 39.5, DefaultGradeThresholds)

	if len(risks) != 1 || risks[0].Type != RiskOther {
		t.Fatalf("expected single below-passline risk, got %v", riskTypes(risks))
	}

	if !strings.Contains(risks[0].Impact, "39.5") {
		t.Fatalf("expected score in impact, got %q", risks[0].Impact)
	}
}
