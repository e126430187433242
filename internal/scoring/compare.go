package scoring

// Comparison summarizes how two scoring results differ, typically the same
// candidate scored under two rule-set versions.
type Comparison struct {
	ScoreDiff    float64 `json:"scoreDiff"`
	GradeChanged bool    `json:"gradeChanged"`
	VersionDiff  bool    `json:"versionDiff"`
}

// CompareResults diffs b against a.
func CompareResults(a, b *Result) Comparison {
	return Comparison{
		ScoreDiff:    b.TotalScore - a.TotalScore,
		GradeChanged: a.Grade != b.Grade,
		VersionDiff:  a.RuleVersion != b.RuleVersion,
	}
}
