package main

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"io"
	"log"
	"os"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("error: %v", err)
	}

	// The terminal belongs to the game; diagnostics go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			config.Exitf("error: open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	g, err := game.New(cfg)
	if err != nil {
		config.Exitf("error: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Printf("run: %v", err)
		config.Exitf("error: %v", err)
	}
}
