package model

import "github.com/sheikhrachel/game-of-war/rules"

// Cell is a single board position. A dead cell keeps a well-defined team,
// Neutral unless something assigned it otherwise.
type Cell struct {
	Alive bool
	Team  rules.Team
}

// Living returns a live cell fighting for team
func Living(team rules.Team) Cell {
	return Cell{Alive: true, Team: team}
}

// InheritFrom sets the cell's team from its living parents
func (c *Cell) InheritFrom(parents []Cell) {
	var counts rules.TeamCounts
	for _, p := range parents {
		counts.Add(p.Team)
	}
	c.Team = counts.Resolve()
}

// Census counts living cells per team
type Census struct {
	Red     int
	Blue    int
	Neutral int
}

// Alive returns the total number of living cells
func (c Census) Alive() int {
	return c.Red + c.Blue + c.Neutral
}

func (c *Census) add(cell Cell) {
	if !cell.Alive {
		return
	}
	switch cell.Team {
	case rules.Red:
		c.Red++
	case rules.Blue:
		c.Blue++
	default:
		c.Neutral++
	}
}
