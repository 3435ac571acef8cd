package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"wikiquiz/internal/config"
	"wikiquiz/internal/quizclient"
	"wikiquiz/internal/webui"
)

func main() {
	cfg := config.WebFromEnv()

	addr := flag.String("addr", cfg.HTTPAddr, "HTTP listen address")
	backendURL := flag.String("backend", cfg.BackendURL, "quiz service base URL")
	flag.Parse()

	backend := quizclient.NewClient(*backendURL, &http.Client{Timeout: 90 * time.Second})
	server := webui.NewServer(backend, cfg.RequireAllAnswered)

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("wikiquiz-web listening on %s, backend %s", *addr, *backendURL)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
