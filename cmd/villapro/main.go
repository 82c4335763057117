package main

import (
	"log"

	"github.com/villapro/villapro/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ villapro failed to start: %v", err)
	}
}
