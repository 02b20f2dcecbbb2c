package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/sheikhrachel/game-of-war/model"
	"github.com/sheikhrachel/game-of-war/utils"
)

func init() {
	log.SetHandler(discard.New())
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	config, err := loadConfig(flags{
		width:     30,
		height:    12,
		pattern:   utils.PatternGlider,
		parallel:  true,
		noColor:   true,
		noRestart: true,
	})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Width != 30 || config.Height != 12 || config.Pattern != utils.PatternGlider {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.Colors || config.AutoRestart {
		t.Fatalf("boolean overrides not applied: %+v", config)
	}
	if strategyFor(config) != model.Parallel {
		t.Fatalf("strategy = %v, expected parallel", strategyFor(config))
	}
}

func TestLoadConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 50, "height": 25, "pattern": "glider"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(flags{configPath: path, height: 8})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Width != 50 || config.Height != 8 {
		t.Fatalf("expected file width and flag height, got %dx%d", config.Width, config.Height)
	}
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	if _, err := loadConfig(flags{width: 1}); err == nil {
		t.Fatal("a 1 wide board should be rejected")
	}
	if _, err := loadConfig(flags{pattern: "spaceship"}); err == nil {
		t.Fatal("unknown pattern should be rejected")
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	tests := []struct {
		name                  string
		living, stagnant, gen int
		wantRestart           bool
		wantReason            string
	}{
		{"extinct", 0, 0, 3, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, 3, true, "stagnation detected"},
		{"periodic", 10, 0, periodicRefresh, true, "periodic refresh"},
		{"active", 10, 1, 3, false, ""},
		{"first generation", 10, 0, 0, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tt.living, tt.stagnant, tt.gen, config)
			if restart != tt.wantRestart || reason != tt.wantReason {
				t.Fatalf("got (%v, %q), expected (%v, %q)", restart, reason, tt.wantRestart, tt.wantReason)
			}
		})
	}
}

func TestGameFrame(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 10, 10
	config.Pattern = utils.PatternGlider
	config.Colors = false

	var out bytes.Buffer
	g, err := initializeGame(config, &out)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	state := updateGameState(g, 0, time.Now())
	if state.census.Alive() != 5 || state.census.Neutral != 5 {
		t.Fatalf("glider census = %+v, expected five neutral cells", state.census)
	}
	if state.status != "Active" {
		t.Fatalf("status = %q, expected Active", state.status)
	}

	displayGameStatus(g, 0, state, 0)
	if err := g.renderer.Display(g.sim); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Gen: 0 | Red: 0 | Blue: 0 | Neutral: 5") {
		t.Fatalf("status line missing from %q", out.String())
	}

	g.sim.Clear()
	if state := updateGameState(g, 1, time.Now()); state.status != "Extinct" {
		t.Fatalf("status = %q, expected Extinct", state.status)
	}

	restartGame(g, "extinction")
	if g.sim.Census().Alive() != 5 {
		t.Fatal("restart should reseed the glider")
	}
}
