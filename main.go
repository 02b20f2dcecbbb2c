package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/game-of-war/utils"
)

const version = "0.1.0"

// flags collected from the command line; zero values mean "not given"
type flags struct {
	configPath  string
	width       int
	height      int
	interval    time.Duration
	generations int
	seed        int64
	pattern     string
	parallel    bool
	bounded     bool
	noColor     bool
	noRestart   bool
	verbose     bool
}

func parseFlags() flags {
	var f flags

	flaggy.SetName("game-of-war")
	flaggy.SetDescription("Conway's Game of Life where red and blue cells fight over the board")
	flaggy.SetVersion(version)
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&f.configPath, "c", "config", "JSON configuration file")
	flaggy.Int(&f.width, "x", "width", "Width of the board")
	flaggy.Int(&f.height, "y", "height", "Height of the board")
	flaggy.Duration(&f.interval, "i", "interval", "Time between generations, for example 150ms")
	flaggy.Int(&f.generations, "g", "generations", "Stop after this many generations")
	flaggy.Int64(&f.seed, "s", "seed", "Seed for the random pattern")
	flaggy.String(&f.pattern, "p", "pattern", "Starting pattern [glider|random]")
	flaggy.Bool(&f.parallel, "", "parallel", "Compute generations with one worker per CPU")
	flaggy.Bool(&f.bounded, "", "bounded", "Only compute the region around living cells")
	flaggy.Bool(&f.noColor, "", "no-color", "Disable team colours")
	flaggy.Bool(&f.noRestart, "", "no-restart", "Do not restart on extinction or stagnation")
	flaggy.Bool(&f.verbose, "", "verbose", "Enable debug logging")

	flaggy.Parse()
	return f
}

// loadConfig starts from the config file, or the defaults, and applies flag overrides
func loadConfig(f flags) (utils.Config, error) {
	config := utils.DefaultConfig()
	if f.configPath != "" {
		var err error
		if config, err = utils.LoadConfig(f.configPath); err != nil {
			return config, err
		}
	}

	if f.width != 0 {
		config.Width = f.width
	}
	if f.height != 0 {
		config.Height = f.height
	}
	if f.interval != 0 {
		config.FrameRate = f.interval
	}
	if f.generations != 0 {
		config.MaxGenerations = f.generations
	}
	if f.seed != 0 {
		config.Seed = f.seed
	}
	if f.pattern != "" {
		config.Pattern = f.pattern
	}
	if f.parallel {
		config.UseParallel = true
		config.UseBoundedGrid = false
	}
	if f.bounded {
		config.UseBoundedGrid = true
	}
	if f.noColor {
		config.Colors = false
	}
	if f.noRestart {
		config.AutoRestart = false
	}

	return config, config.Validate()
}

func main() {
	log.SetHandler(cli.New(os.Stderr))

	f := parseFlags()
	if f.verbose {
		log.SetLevel(log.DebugLevel)
	}

	config, err := loadConfig(f)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.WithError(err).Fatal("failed to start game")
	}
	displayGameInfo(g)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			log.WithFields(log.Fields{
				"generations": generation,
				"runtime":     time.Since(g.stats.StartTime).Round(time.Millisecond),
				"avg_pop":     g.stats.AveragePopulation,
			}).Info("shutting down")
			return
		default:
		}

		frameStart := time.Now()
		if err := g.renderer.Clear(); err != nil {
			log.WithError(err).Warn("failed to clear terminal")
		}

		state := updateGameState(g, generation, lastFrameTime)
		lastFrameTime = frameStart

		if state.stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g, generation, state, lastRestartGen)
		if err := g.renderer.Display(g.sim); err != nil {
			log.WithError(err).Fatal("failed to render board")
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			log.WithFields(log.Fields{
				"generations": generation,
				"leader":      g.stats.Leader(),
			}).Info("reached maximum generations")
			return
		}

		if restart, reason := checkRestartConditions(state.census.Alive(), stagnantCount, generation, config); restart && config.AutoRestart {
			restartGame(g, reason)
			lastRestartGen = generation
			stagnantCount = 0
		}

		g.sim.Tick()
		generation++

		time.Sleep(config.FrameRate)
	}
}
