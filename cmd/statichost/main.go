package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/paperdock/paperdock/internal/server/statichost"
)

func main() {
	cfg := statichost.LoadConfig()
	app := statichost.NewApp(cfg)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Serving %s on port %s", cfg.StaticDir, cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
