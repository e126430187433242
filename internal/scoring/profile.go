package scoring

// CandidateProfile is the structured input being scored. It is never mutated
// by the engine; a fresh Result is produced per call.
type CandidateProfile struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Education      string         `json:"education"`
	School         string         `json:"school"`
	Major          string         `json:"major"`
	WorkYears      float64        `json:"workYears"`
	Skills         []string       `json:"skills"`
	Projects       []string       `json:"projects"`
	RawText        string         `json:"rawText"`
	GraduationDate string         `json:"graduationDate,omitempty"`
	ExtraFields    map[string]any `json:"extraFields,omitempty"`
}

// fixedFields is the accessor table for the compile-time known scalar
// attributes a numeric or enum rule may reference by name.
var fixedFields = map[string]func(*CandidateProfile) any{
	"name":           func(p *CandidateProfile) any { return p.Name },
	"email":          func(p *CandidateProfile) any { return p.Email },
	"phone":          func(p *CandidateProfile) any { return p.Phone },
	"education":      func(p *CandidateProfile) any { return p.Education },
	"school":         func(p *CandidateProfile) any { return p.School },
	"major":          func(p *CandidateProfile) any { return p.Major },
	"workYears":      func(p *CandidateProfile) any { return p.WorkYears },
	"graduationDate": func(p *CandidateProfile) any { return p.GraduationDate },
}

// Field resolves a rule field name against the fixed attributes first and the
// open extraFields map second. The second return reports whether the name
// resolved at all.
func (p *CandidateProfile) Field(name string) (any, bool) {
	if accessor, ok := fixedFields[name]; ok {
		return accessor(p), true
	}

	if p.ExtraFields != nil {
		if value, ok := p.ExtraFields[name]; ok {
			return value, true
		}
	}

	return nil, false
}

// ValidateCandidate reports advisory completeness problems with a profile.
// An incomplete profile still scores; missing data only degrades the result.
func ValidateCandidate(p *CandidateProfile) []string {
	var problems []string

	if p.Name == "" {
		problems = append(problems, "Missing name")
	}
	if len(p.Skills) == 0 {
		problems = append(problems, "Missing skills")
	}
	if p.RawText == "" {
		problems = append(problems, "Missing rawText")
	}

	return problems
}
