package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"wikiquiz/internal/config"
	"wikiquiz/internal/httpapi"
	"wikiquiz/internal/llm"
	"wikiquiz/internal/quizgen"
	"wikiquiz/internal/wikipedia"
)

func main() {
	cfg := config.ServiceFromEnv()

	addr := flag.String("addr", cfg.HTTPAddr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DBPath, "path to the sqlite database")
	flag.Parse()

	store, err := quizgen.NewSQLiteStore(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	generator, err := llm.NewClient(llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
	}, &http.Client{Timeout: 60 * time.Second})
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	articles := wikipedia.NewClient(&http.Client{Timeout: 30 * time.Second})
	service := quizgen.NewService(store, articles.FetchArticle, generator)

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(service),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("wikiquiz-service listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
