package main

import (
	"log"

	"github.com/MohamedMedan1/Tasque-Api/internal/app"
	"github.com/MohamedMedan1/Tasque-Api/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
