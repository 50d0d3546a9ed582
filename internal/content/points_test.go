package content

import "testing"

func TestPointTargets(t *testing.T) {
	tests := []struct {
		level        int
		wantRequired int
		wantMax      int
	}{
		{1, 30, 35},
		{2, 35, 45},
		{3, 40, 55},
		{5, 50, 75},
		{10, 75, 125},
	}

	for _, tt := range tests {
		if got := RequiredPoints(tt.level); got != tt.wantRequired {
			t.Errorf("RequiredPoints(%d) = %d, want %d", tt.level, got, tt.wantRequired)
		}
		if got := MaxPoints(tt.level); got != tt.wantMax {
			t.Errorf("MaxPoints(%d) = %d, want %d", tt.level, got, tt.wantMax)
		}
	}
}

func TestMaxAlwaysAboveRequired(t *testing.T) {
	for level := 1; level <= 20; level++ {
		if MaxPoints(level) <= RequiredPoints(level) {
			t.Errorf("level %d: max %d not above required %d", level, MaxPoints(level), RequiredPoints(level))
		}
	}
}
