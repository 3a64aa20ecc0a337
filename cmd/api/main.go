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

	"github.com/joho/godotenv"
	"github.com/zhouzirui/moodbot/backend/internal/analysis/intent"
	"github.com/zhouzirui/moodbot/backend/internal/analysis/tokenize"
	"github.com/zhouzirui/moodbot/backend/internal/config"
	"github.com/zhouzirui/moodbot/backend/internal/handler"
	"github.com/zhouzirui/moodbot/backend/internal/service/chatbot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	tokenizer, err := tokenize.New(cfg.Chatbot.Tokenizer)
	if err != nil {
		log.Fatalf("failed to build tokenizer: %v", err)
	}

	mode := intent.MatchToken
	if cfg.Chatbot.PhraseMatch {
		mode = intent.MatchPhrase
	}
	detector := intent.NewDetector(tokenizer, mode)
	log.Printf("intent detector ready (tokenizer=%s, match=%s)", cfg.Chatbot.Tokenizer, detector.Mode())

	chatbotService := chatbot.NewService(chatbot.WithDetector(detector))

	router := handler.NewRouter(chatbotService, cfg.Server.Debug)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("chatbot backend listening on %s (debug=%t)", addr, serverCfg.Debug)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
