package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"geoprofile/internal/web"
)

func main() {
	var cfg web.Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	flag.Parse()
	cfg.Addr = *addr

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := web.NewServer(cfg)
	if err != nil {
		log.Fatalf("build web server: %v", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
