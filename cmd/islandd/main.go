package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"isle/internal/server"
)

func main() {
	addr := flag.String("addr", envOr("ISLAND_ADDR", ":8080"), "listen address")
	flag.Parse()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("island server listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
