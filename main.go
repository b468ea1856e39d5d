package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quiz-funnel/cliparse"
	"github.com/danielhkuo/quiz-funnel/graph"
	"github.com/danielhkuo/quiz-funnel/router"
	"github.com/danielhkuo/quiz-funnel/store"
)

func main() {
	var err error

	// Load .env if present (dev convenience; real deployments set env)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the question graph; a malformed file must not serve traffic
	g, err := graph.Load(cfg.QuestionsPath)
	if err != nil {
		slog.Error("question graph load failed", "error", err, "path", cfg.QuestionsPath)
		os.Exit(1)
	}
	slog.Info("Question graph loaded", "questions", len(g.Questions), "results", len(g.Results))

	// Connect to the session store
	st, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Verify connection
	if err := st.Ping(); err != nil {
		slog.Error("store ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := st.CreateSchema(); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Create router
	mux := router.NewRouter(st, g, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
