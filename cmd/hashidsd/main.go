package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/app"
	"github.com/danilovkiri/dk_go_hashids/internal/config"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if cfg.HashidConfig.Defaults.Salt == "" {
		log.Warn("HASHID_SALT is empty, hashids are derived from the bare alphabet")
	}
	// set a listener for os.Signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
