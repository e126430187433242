package scoring

import (
	"fmt"
	"strings"
)

// Risk analyzer thresholds.
const (
	criticalMustWeight = 3
	lowExperienceYears = 2
)

// identifyRisks runs deterministic, rule-based inference over the already
// computed match results. Risks are additive; none suppresses another.
func identifyRisks(candidate *CandidateProfile, must skillEvaluation, reject rejectEvaluation, totalScore float64, thresholds GradeThresholds) []RiskItem {
	risks := make([]RiskItem, 0, 4)

	if len(reject.matched) > 0 {
		risks = append(risks, RiskItem{
			Type:        RiskRejectKeyword,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("包含拒绝关键词: %s", strings.Join(reject.matched, ", ")),
			Impact:      fmt.Sprintf("扣除 %.0f 分", reject.penalty),
		})
	}

	var critical []string
	for _, m := range must.missing {
		if m.Weight >= criticalMustWeight {
			critical = append(critical, m.Name)
		}
	}
	if len(critical) > 0 {
		risks = append(risks, RiskItem{
			Type:        RiskMissingMust,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("缺少关键技能: %s", strings.Join(critical, ", ")),
			Impact:      "影响核心能力评估",
		})
	}

	if candidate.WorkYears < lowExperienceYears {
		severity := SeverityMedium
		if candidate.WorkYears == 0 {
			severity = SeverityHigh
		}
		risks = append(risks, RiskItem{
			Type:        RiskLowExperience,
			Severity:    severity,
			Description: fmt.Sprintf("工作经验较少: %v 年", candidate.WorkYears),
			Impact:      "可能缺乏实际项目经验",
		})
	}

	if totalScore < float64(thresholds.C) {
		risks = append(risks, RiskItem{
			Type:        RiskOther,
			Severity:    SeverityHigh,
			Description: "总体匹配度较低",
			Impact:      fmt.Sprintf("总分 %.1f < 及格线 %d", totalScore, thresholds.C),
		})
	}

	return risks
}
