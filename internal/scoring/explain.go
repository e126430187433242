package scoring

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-scorer/internal/util"
)

// summaryMaxLen bounds the one-line summary. Truncation appends an ellipsis,
// keeping the final string under 100 runes.
const summaryMaxLen = 96

// buildExplanation renders the fixed-structure report. It is a pure function
// of the already-computed evaluation results and performs no recomputation.
func buildExplanation(rules *RuleSet, totalScore float64, grade Grade, must, nice skillEvaluation, reject rejectEvaluation, risks []RiskItem) string {
	lines := make([]string, 0, 32)

	lines = append(lines, "=== 评分详情 ===\n")
	lines = append(lines, fmt.Sprintf("总分: %.1f / 100", totalScore))
	lines = append(lines, fmt.Sprintf("等级: %s\n", grade))

	lines = append(lines, fmt.Sprintf("【必备技能】得分: %.1f", must.score))
	if len(must.matched) > 0 {
		lines = append(lines, fmt.Sprintf("✓ 匹配 (%d/%d):", len(must.matched), len(rules.MustSkills)))
		for _, m := range must.matched {
			lines = append(lines, fmt.Sprintf("  - %s (权重%d, +%.1f分)", m.Name, m.Weight, m.Score))
		}
	}
	if len(must.missing) > 0 {
		lines = append(lines, fmt.Sprintf("✗ 缺失 (%d):", len(must.missing)))
		for _, m := range must.missing {
			lines = append(lines, fmt.Sprintf("  - %s (权重%d, 损失%.1f分)", m.Name, m.Weight, m.PotentialScore))
		}
	}
	lines = append(lines, "")

	if len(rules.NiceSkills) > 0 {
		lines = append(lines, fmt.Sprintf("【加分技能】得分: %.1f", nice.score))
		if len(nice.matched) > 0 {
			lines = append(lines, fmt.Sprintf("✓ 匹配 (%d/%d):", len(nice.matched), len(rules.NiceSkills)))
			for _, m := range nice.matched {
				lines = append(lines, fmt.Sprintf("  - %s (权重%d, +%.1f分)", m.Name, m.Weight, m.Score))
			}
		} else {
			lines = append(lines, "  未匹配到加分技能")
		}
		lines = append(lines, "")
	}

	if len(reject.matched) > 0 {
		lines = append(lines, fmt.Sprintf("【拒绝关键词】扣分: -%.1f", reject.penalty))
		for _, keyword := range reject.matched {
			lines = append(lines, fmt.Sprintf("  ✗ %q (-%d分)", keyword, rejectPenaltyFor(rules.RejectRules, keyword)))
		}
		lines = append(lines, "")
	}

	if len(risks) > 0 {
		lines = append(lines, "【风险提示】")
		for _, risk := range risks {
			icon := "ℹ️"
			if risk.Severity == SeverityHigh {
				icon = "⚠️"
			}
			lines = append(lines, fmt.Sprintf("  %s %s", icon, risk.Description))
			lines = append(lines, fmt.Sprintf("     → %s", risk.Impact))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "【评估总结】")
	lines = append(lines, recommendationFor(grade))

	return strings.Join(lines, "\n")
}

func rejectPenaltyFor(rules []RejectRule, keyword string) int {
	for _, rule := range rules {
		if rule.Keyword == keyword {
			return rule.Penalty
		}
	}
	return 0
}

func recommendationFor(grade Grade) string {
	switch grade {
	case GradeA:
		return "✓ 优秀候选人，强烈推荐面试"
	case GradeB:
		return "✓ 合格候选人，建议面试"
	case GradeC:
		return "⚠ 基本合格，可考虑备选"
	case GradeD:
		return "✗ 不符合岗位要求，不推荐"
	}
	return "✗ 不符合岗位要求，不推荐"
}

// buildSummary renders the one-line localized summary, bounded in length.
func buildSummary(totalScore float64, grade Grade, riskCount int) string {
	summary := fmt.Sprintf("评分%.1f分(%s)", totalScore, gradeLabel(grade))
	if riskCount > 0 {
		summary += fmt.Sprintf("，%d个风险点", riskCount)
	}
	return util.Truncate(summary, summaryMaxLen)
}

func gradeLabel(grade Grade) string {
	switch grade {
	case GradeA:
		return "优秀"
	case GradeB:
		return "良好"
	case GradeC:
		return "一般"
	case GradeD:
		return "不合格"
	}
	return "不合格"
}
