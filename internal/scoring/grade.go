package scoring

// determineGrade maps a clamped total score to its letter band. Thresholds
// are checked from A downwards; the validated A >= B >= C >= D ordering
// guarantees a well-defined partition.
func determineGrade(score float64, t GradeThresholds) Grade {
	switch {
	case score >= float64(t.A):
		return GradeA
	case score >= float64(t.B):
		return GradeB
	case score >= float64(t.C):
		return GradeC
	}
	return GradeD
}
