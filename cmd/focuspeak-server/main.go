// Command focuspeak-server serves the focus peaking HTTP API.
package main

import (
	"flag"
	"fmt"
	"log"

	"focuspeak/internal/api"
	"focuspeak/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	app := api.NewServer(cfg)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Printf("Listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
