package rules

// Team is the side a living cell fights for
type Team uint8

const (
	Neutral Team = iota
	Red
	Blue
)

var teamNames = map[Team]string{
	Neutral: "neutral",
	Red:     "red",
	Blue:    "blue",
}

func (t Team) String() string {
	if name, ok := teamNames[t]; ok {
		return name
	}
	return "unknown"
}

// TeamCounts tallies parents per team
type TeamCounts struct {
	Red     int
	Blue    int
	Neutral int
}

// Total returns the number of tallied parents
func (c TeamCounts) Total() int {
	return c.Red + c.Blue + c.Neutral
}

// Add puts one parent of the given team into its bucket
func (c *TeamCounts) Add(t Team) {
	switch t {
	case Red:
		c.Red++
	case Blue:
		c.Blue++
	default:
		c.Neutral++
	}
}

// Resolve picks the team of a newborn cell from the tally.
// A single parent from the opposing side is enough to make the birth neutral.
func (c TeamCounts) Resolve() Team {
	switch {
	case c.Red > 0 && c.Blue == 0:
		return Red
	case c.Blue > 0 && c.Red == 0:
		return Blue
	default:
		return Neutral
	}
}

// Inherit returns the team a cell born from the given parents belongs to
func Inherit(parents []Team) Team {
	var counts TeamCounts
	for _, p := range parents {
		counts.Add(p)
	}
	return counts.Resolve()
}
