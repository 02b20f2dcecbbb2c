package model

import (
	"iter"
	"math/rand/v2"
	"runtime"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/game-of-war/rules"
)

// AliveProbability is the chance Randomize brings a cell to life
const AliveProbability = 0.4

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// gliderCells is the canonical glider, heading towards +x, +y
var gliderCells = []Point{{2, 1}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}

// Strategy selects how Tick walks the board. All strategies produce identical generations.
type Strategy int

const (
	// Sequential visits every cell on the calling goroutine
	Sequential Strategy = iota
	// Parallel shards rows across one worker per CPU
	Parallel
	// Bounded only visits the region around living cells
	Bounded
)

func (s Strategy) String() string {
	switch s {
	case Parallel:
		return "parallel"
	case Bounded:
		return "bounded"
	default:
		return "sequential"
	}
}

// Option configures a Simulation
type Option func(*Simulation)

// WithStrategy picks the tick strategy
func WithStrategy(s Strategy) Option {
	return func(sim *Simulation) {
		sim.strategy = s
	}
}

// WithLogger replaces the default apex logger
func WithLogger(l log.Interface) Option {
	return func(sim *Simulation) {
		sim.log = l
	}
}

// Simulation owns the current generation and advances it one tick at a time.
// It is not safe for concurrent use; readers must not overlap a Tick.
type Simulation struct {
	cur  *Grid
	next *Grid // scratch buffer, swapped with cur after every tick

	strategy   Strategy
	generation int
	history    []string
	log        log.Interface
}

// NewSimulation creates a simulation on an empty width x height board
func NewSimulation(width, height int, opts ...Option) (*Simulation, error) {
	cur, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to allocate board")
	}
	sim := &Simulation{
		cur:  cur,
		next: MustNewGrid(width, height),
		log:  log.Log,
	}
	for _, opt := range opts {
		opt(sim)
	}
	sim.log.WithFields(log.Fields{
		"width":    width,
		"height":   height,
		"strategy": sim.strategy,
	}).Debug("simulation created")
	return sim, nil
}

// Width returns the board width
func (s *Simulation) Width() int {
	return s.cur.width
}

// Height returns the board height
func (s *Simulation) Height() int {
	return s.cur.height
}

// Generation returns the number of ticks since the board was last set up
func (s *Simulation) Generation() int {
	return s.generation
}

// Get returns the current cell at (x, y); ok is false off the board
func (s *Simulation) Get(x, y int) (Cell, bool) {
	return s.cur.Get(x, y)
}

// All yields the current generation, x varying fastest
func (s *Simulation) All() iter.Seq2[Point, Cell] {
	return s.cur.All()
}

// Census counts living cells per team in the current generation
func (s *Simulation) Census() Census {
	return s.cur.Census()
}

// GetGridHash hashes the current generation
func (s *Simulation) GetGridHash() string {
	return s.cur.GetGridHash()
}

// GetBoundingBoxSize returns the area of the region holding living cells
func (s *Simulation) GetBoundingBoxSize() int {
	return s.cur.GetBoundingBoxSize()
}

// Snapshot returns a deep copy of the current generation
func (s *Simulation) Snapshot() *Grid {
	return s.cur.Clone()
}

// Load replaces the current generation with a copy of g
func (s *Simulation) Load(g *Grid) error {
	if err := s.cur.CopyFrom(g); err != nil {
		return errors.Wrap(err, "[Load] failed to copy board")
	}
	s.reset()
	s.log.WithField("population", s.cur.CountLivingCells()).Debug("board loaded")
	return nil
}

// Tick advances the board by exactly one generation
func (s *Simulation) Tick() {
	switch s.strategy {
	case Parallel:
		s.tickParallel()
	case Bounded:
		s.tickBounded()
	default:
		s.tickRows(0, s.cur.height)
	}

	s.cur, s.next = s.next, s.cur
	s.generation++
	s.updateHistory()
}

// tickRows computes rows [startRow, endRow) of the next generation
func (s *Simulation) tickRows(startRow, endRow int) {
	buf := make([]Cell, 0, 8)
	for y := startRow; y < endRow; y++ {
		for x := range s.cur.width {
			s.next.cells[y][x] = s.cur.nextCell(x, y, buf)
		}
	}
}

// tickParallel calculates the next generation using one worker per CPU
func (s *Simulation) tickParallel() {
	var (
		eg            errgroup.Group
		height        = s.cur.height
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			s.tickRows(startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is only the join point before the swap
	_ = eg.Wait()
}

// tickBounded calculates the next generation only in the active region plus a one cell margin
func (s *Simulation) tickBounded() {
	s.next.Clear()

	b, ok := s.cur.activeBounds()
	if !ok {
		return
	}

	minX := max(0, b.minX-1)
	maxX := min(s.cur.width-1, b.maxX+1)
	minY := max(0, b.minY-1)
	maxY := min(s.cur.height-1, b.maxY+1)

	buf := make([]Cell, 0, 8)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			s.next.cells[y][x] = s.cur.nextCell(x, y, buf)
		}
	}
}

// Clear kills every cell
func (s *Simulation) Clear() {
	s.cur.Clear()
	s.reset()
}

// Randomize brings each cell to life with probability AliveProbability,
// assigning living cells to Red or Blue with equal odds
func (s *Simulation) Randomize(rng *rand.Rand) {
	for y := range s.cur.height {
		for x := range s.cur.width {
			if rng.Float64() >= AliveProbability {
				s.cur.cells[y][x] = Cell{}
				continue
			}
			team := rules.Red
			if rng.IntN(2) == 1 {
				team = rules.Blue
			}
			s.cur.cells[y][x] = Living(team)
		}
	}
	s.reset()

	census := s.cur.Census()
	s.log.WithFields(log.Fields{
		"red":  census.Red,
		"blue": census.Blue,
	}).Debug("board randomized")
}

// SeedGlider clears the board and places a neutral glider near the origin
func (s *Simulation) SeedGlider() {
	s.Clear()
	for _, p := range gliderCells {
		s.cur.Set(p.X, p.Y, Living(rules.Neutral))
	}
	s.log.WithField("population", s.cur.CountLivingCells()).Debug("glider seeded")
}

// reset forgets generation count and history after the board is set up from outside
func (s *Simulation) reset() {
	s.generation = 0
	s.history = nil
}

// updateHistory adds current state to history and maintains size
func (s *Simulation) updateHistory() {
	s.history = append(s.history, s.cur.GetGridHash())
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the latest generation repeats one of the three before it,
// which catches still lifes and period 2 or 3 oscillators
func (s *Simulation) IsStagnant() bool {
	n := len(s.history)
	if n < 2 {
		return false
	}
	current := s.history[n-1]
	for back := 2; back <= 4 && back <= n; back++ {
		if s.history[n-back] == current {
			return true
		}
	}
	return false
}
