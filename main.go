package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"presensi_backend/internals/configs"
	"presensi_backend/internals/server"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	// graceful shutdown + tutup pool DB
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
