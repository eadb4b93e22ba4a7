package main

import (
	"log"
	"os"

	"quizprize-game/internal/config"
	"quizprize-game/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()
	srv := server.NewServer(cfg)
	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		log.Fatal("Failed to start server:", err)
		os.Exit(1)
	}
}
