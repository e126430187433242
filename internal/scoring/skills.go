package scoring

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// skillEvaluation is the immutable outcome of running one skill-rule category
// (must or nice) over a candidate.
type skillEvaluation struct {
	score   float64
	matched []MatchedItem
	missing []MissingItem
}

// evaluateSkills resolves every rule in order. A rule is either matched (its
// weighted contribution added) or missing (its lost potential recorded), so
// len(matched)+len(missing) always equals len(rules).
func evaluateSkills(rules []SkillRule, multiplier int, skills map[string]struct{}, rawText string, logger *zap.Logger) skillEvaluation {
	eval := skillEvaluation{
		matched: make([]MatchedItem, 0, len(rules)),
		missing: make([]MissingItem, 0, len(rules)),
	}

	for _, rule := range rules {
		ok, via := matchSkill(rule, skills, rawText, logger)
		itemScore := float64(rule.Weight * multiplier)

		if ok {
			eval.score += itemScore
			eval.matched = append(eval.matched, MatchedItem{
				Name:       rule.Skill,
				Weight:     rule.Weight,
				Score:      itemScore,
				MatchedVia: via,
			})
			continue
		}

		eval.missing = append(eval.missing, MissingItem{
			Name:           rule.Skill,
			Weight:         rule.Weight,
			PotentialScore: itemScore,
		})
	}

	return eval
}

// matchSkill resolves a single skill rule. The skills set and rawText must
// already be lowercased. A skills-list hit takes precedence over a raw-text
// hit for provenance.
func matchSkill(rule SkillRule, skills map[string]struct{}, rawText string, logger *zap.Logger) (bool, string) {
	switch rule.MatchType {
	case MatchKeyword, "":
		skill := strings.ToLower(rule.Skill)
		if _, ok := skills[skill]; ok {
			return true, ViaSkillsList
		}
		if strings.Contains(rawText, skill) {
			return true, ViaRawText
		}
	case MatchRegex:
		if rule.Pattern == "" {
			return false, ""
		}

		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			// A broken pattern must not abort scoring. The rule simply
			// never matches and the skill is reported as missing.
			if logger != nil {
				logger.Warn("invalid regex pattern in skill rule",
					zap.String("skill", rule.Skill),
					zap.String("pattern", rule.Pattern),
					zap.Error(err),
				)
			}
			return false, ""
		}

		if re.MatchString(rawText) {
			return true, ViaRegex
		}
	}

	return false, ""
}
