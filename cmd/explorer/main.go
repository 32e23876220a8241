package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/tileworld/cmd/explorer/models"
	"github.com/VoidMesh/tileworld/internal/config"
	"github.com/VoidMesh/tileworld/internal/logging"
	"github.com/VoidMesh/tileworld/services/chunk"
	"github.com/VoidMesh/tileworld/services/entity"
	"github.com/VoidMesh/tileworld/services/noise"
	"github.com/VoidMesh/tileworld/services/world"
)

const defaultLogFile = "explorer.log"

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	headless := flag.Bool("headless", false, "Render a single frame to stdout and exit")
	width := flag.Int("width", 80, "Canvas width in columns (headless)")
	height := flag.Int("height", 24, "Canvas height in text lines (headless)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// The terminal belongs to the UI, so interactive runs always log to a file.
	logFile := cfg.Logging.File
	if logFile == "" && !*headless {
		logFile = defaultLogFile
	}
	var out io.Writer = os.Stderr
	if logFile != "" {
		fileCfg := cfg.LogFile()
		fileCfg.Path = logFile
		lf := logging.NewFileWriter(fileCfg)
		defer lf.Close()
		out = lf
	}
	logging.InitWithOutput(out, cfg.Logging.Level)
	logger := logging.GetLogger()

	var gen noise.GeneratorInterface
	gen, err = noise.NewGenerator(cfg.World.Noise)
	if err != nil {
		logger.Fatal("Failed to create noise generator", "error", err)
	}

	start := time.Now()
	w := world.New(cfg.WorldOptions(), gen, world.NewDefaultLoggerWrapper())
	logging.WithDuration("world_generation", time.Since(start)).Info("Spawn area ready", "seed", gen.GetSeed())

	spawn, ok := models.FindSpawn(w, w.Options().SpawnSpan*chunk.Size)
	if !ok {
		logger.Warn("No safe spawn tile near the origin, spawning at (0, 0)")
	}
	player := entity.NewPlayer(cfg.Explorer.PlayerName, spawn)
	logging.WithEntityID(player.ID.String()).Info("Player spawned", "name", player.Name, "x", spawn.X(), "y", spawn.Y())

	if *headless {
		explorer := models.NewExplorer(w, player, cfg.Explorer, *width, *height*2)
		explorer.Step(1 / float64(cfg.Explorer.FPS))
		fmt.Println(explorer.View())

		stats := w.Stats()
		fmt.Printf("seed=%d base=%s chunks=%d map_chunks=%d spawn=(%.0f, %.0f)\n",
			gen.GetSeed(), gen.Config().Base, stats.Chunks, stats.MapChunks, spawn.X(), spawn.Y())
		return
	}

	explorer := models.NewExplorer(w, player, cfg.Explorer, *width, *height*2)
	program := tea.NewProgram(explorer, tea.WithAltScreen())

	logger.Info("Starting tileworld explorer", "seed", gen.GetSeed(), "config", *configPath, "log_file", logFile)

	if _, err := program.Run(); err != nil {
		logger.Fatal("Error running explorer", "error", err)
	}
	logger.Info("Explorer stopped", "deaths", player.Deaths(), "frames", explorer.Frames())
}
