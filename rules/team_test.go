package rules

import "testing"

func TestInherit(t *testing.T) {
	tests := []struct {
		name    string
		parents []Team
		want    Team
	}{
		{"all red", []Team{Red, Red, Red}, Red},
		{"all blue", []Team{Blue, Blue, Blue}, Blue},
		{"red with neutrals", []Team{Red, Neutral, Neutral}, Red},
		{"blue with neutral", []Team{Neutral, Blue, Blue}, Blue},
		{"two red one blue", []Team{Red, Red, Blue}, Neutral},
		{"one red two blue", []Team{Red, Blue, Blue}, Neutral},
		{"all neutral", []Team{Neutral, Neutral, Neutral}, Neutral},
		{"no parents", nil, Neutral},
		{"large red majority still vetoed", []Team{Red, Red, Red, Red, Red, Red, Red, Blue}, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inherit(tt.parents); got != tt.want {
				t.Fatalf("Inherit(%v) = %v, want %v", tt.parents, got, tt.want)
			}
		})
	}
}

func TestTeamCounts(t *testing.T) {
	var c TeamCounts
	for _, team := range []Team{Red, Blue, Neutral, Red} {
		c.Add(team)
	}
	if c.Red != 2 || c.Blue != 1 || c.Neutral != 1 {
		t.Fatalf("unexpected tally %+v", c)
	}
	if c.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", c.Total())
	}
}

func TestTeamString(t *testing.T) {
	if Red.String() != "red" || Blue.String() != "blue" || Neutral.String() != "neutral" {
		t.Fatalf("unexpected names: %s %s %s", Red, Blue, Neutral)
	}
	if Team(42).String() != "unknown" {
		t.Fatalf("out of range team should print as unknown, got %s", Team(42))
	}
	var zero Team
	if zero != Neutral {
		t.Fatal("zero Team must be Neutral")
	}
}
