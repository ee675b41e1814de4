package main

import (
	"context"
	"log"

	"github.com/pawhaven/pawhaven/internal/app/catalog"
)

func main() {
	if err := catalog.Run(context.Background()); err != nil {
		log.Fatalf("catalog gateway failed: %v", err)
	}
}
