package main

import (
	"log"
	// 內嵌時區資料，scratch/distroless 映像沒有 /usr/share/zoneinfo
	_ "time/tzdata"

	"meetup-web/config"
	"meetup-web/internal/app"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
