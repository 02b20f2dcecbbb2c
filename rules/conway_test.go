package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely cell dies", 0, true, false},
		{"one neighbor dies", 1, true, false},
		{"two neighbors survives", 2, true, true},
		{"three neighbors survives", 3, true, true},
		{"crowded cell dies", 4, true, false},
		{"dead with two stays dead", 2, false, false},
		{"dead with three is born", 3, false, true},
		{"dead with eight stays dead", 8, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
