package scoring

import "testing"

func TestDetermineGrade(t *testing.T) {
	thresholds := GradeThresholds{A: 80, B: 60, C: 40, D: 0}

	cases := []struct {
		score float64
		want  Grade
	}{
		{score: 100, want: GradeA},
		{score: 80, want: GradeA},
		{score: 79.9, want: GradeB},
		{score: 60, want: GradeB},
		{score: 59.9, want: GradeC},
		{score: 40, want: GradeC},
		{score: 39.9, want: GradeD},
		{score: 0, want: GradeD},
	}

	for _, c := range cases {
		if got := determineGrade(c.score, thresholds); got != c.want {
			t.Fatalf("determineGrade(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestDetermineGradeEqualThresholds(t *testing.T) {
	// With A == B the A band is checked first and wins on the shared boundary.
	thresholds := GradeThresholds{A: 60, B: 60, C: 40, D: 0}

	if got := determineGrade(60, thresholds); got != GradeA {
		t.Fatalf("determineGrade(60) = %s, want A", got)
	}
}
