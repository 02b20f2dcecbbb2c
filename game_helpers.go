package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/apex/log"

	"github.com/sheikhrachel/game-of-war/model"
	"github.com/sheikhrachel/game-of-war/utils"
)

// periodicRefresh restarts a long running board even if it is still active
const periodicRefresh = 200

type game struct {
	config   utils.Config
	sim      *model.Simulation
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	rng      *rand.Rand
	out      io.Writer
}

type gameState struct {
	census   model.Census
	density  float64
	status   string
	stagnant bool
}

func strategyFor(config utils.Config) model.Strategy {
	switch {
	case config.UseBoundedGrid:
		return model.Bounded
	case config.UseParallel:
		return model.Parallel
	default:
		return model.Sequential
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	sim, err := model.NewSimulation(config.Width, config.Height,
		model.WithStrategy(strategyFor(config)))
	if err != nil {
		return nil, err
	}

	rng, seed := utils.NewRNG(config.Seed)
	log.WithField("seed", seed).Debug("random source ready")

	g := &game{
		config:   config,
		sim:      sim,
		renderer: model.NewTerminalRenderer(out, config.Colors),
		stats:    utils.NewStats(),
		rng:      rng,
		out:      out,
	}
	seedBoard(g)
	return g, nil
}

// seedBoard lays down the configured starting pattern
func seedBoard(g *game) {
	switch g.config.Pattern {
	case utils.PatternGlider:
		g.sim.SeedGlider()
	default:
		g.sim.Randomize(g.rng)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	census := g.sim.Census()
	log.WithFields(log.Fields{
		"width":    g.sim.Width(),
		"height":   g.sim.Height(),
		"strategy": strategyFor(g.config),
		"pattern":  g.config.Pattern,
		"red":      census.Red,
		"blue":     census.Blue,
	}).Info("game of war starting, press Ctrl+C to exit")
}

// updateGameState updates the stats and works out the status line
func updateGameState(g *game, generation int, lastFrameTime time.Time) gameState {
	census := g.sim.Census()
	density := float64(census.Alive()) / float64(g.sim.Width()*g.sim.Height()) * 100

	g.stats.Update(generation, census.Red, census.Blue, census.Neutral, time.Since(lastFrameTime))

	stagnant := g.sim.IsStagnant()

	status := "Active"
	if stagnant {
		status = "Stagnant"
	}
	if census.Alive() == 0 {
		status = "Extinct"
	}

	return gameState{
		census:   census,
		density:  density,
		status:   status,
		stagnant: stagnant,
	}
}

// displayGameStatus shows the current game status above the board
func displayGameStatus(g *game, generation int, state gameState, lastRestartGen int) {
	boundingInfo := ""
	if g.config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", g.sim.GetBoundingBoxSize())
	}

	fmt.Fprintf(g.out, "Gen: %d | Red: %d | Blue: %d | Neutral: %d | Density: %.1f%% | Status: %s%s\n",
		generation, state.census.Red, state.census.Blue, state.census.Neutral,
		state.density, state.status, boundingInfo)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Leader: %s\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Leader())

	if generation > lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board in place
func restartGame(g *game, reason string) {
	seedBoard(g)
	log.WithFields(log.Fields{
		"reason":     reason,
		"population": g.sim.Census().Alive(),
	}).Info("board restarted")
}
