package utils

import "testing"

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-360, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); got != tt.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(0, 1, 10); got != 1 {
		t.Errorf("ClampInt(0,1,10) = %d", got)
	}
	if got := ClampInt(11, 1, 10); got != 10 {
		t.Errorf("ClampInt(11,1,10) = %d", got)
	}
	if got := ClampInt(5, 1, 10); got != 5 {
		t.Errorf("ClampInt(5,1,10) = %d", got)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(3.14159, 2); got != 3.14 {
		t.Errorf("RoundTo = %v, want 3.14", got)
	}
	if got := RoundTo(2.5, 0); got != 3 {
		t.Errorf("RoundTo = %v, want 3", got)
	}
}
