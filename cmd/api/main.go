package main

import (
	"context"
	"log"

	"github.com/pawhaven/pawhaven/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("inventory API failed: %v", err)
	}
}
