package main

import (
	"context"
	"log"

	"github.com/filebox/filebox/internal/devserver"
	"github.com/filebox/filebox/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := devserver.LoadConfig()

	srv := devserver.NewServer(cfg, logging.NewDefault())
	if err := srv.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
