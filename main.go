package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zachkp/portfolio-motion/motion"
)

func main() {
	cfg := loadConfig()
	motion.SetLogger(cfg.motionLogger(os.Stderr))

	srv, err := newServer(cfg)
	if err != nil {
		log.Fatal("Failed to set up motion server:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.cursors.runReaper(time.Minute, ctx.Done())

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.router(),
	}
	go func() {
		log.Printf("Portfolio listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down, stopping %d cursors", srv.cursors.count())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	srv.cursors.stopAll()
}
