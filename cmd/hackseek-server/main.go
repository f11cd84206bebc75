package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/hackseek-app/hackseek/internal/auth"
	"github.com/hackseek-app/hackseek/internal/config"
	"github.com/hackseek-app/hackseek/internal/httpapi"
	"github.com/hackseek-app/hackseek/internal/llm"
	"github.com/hackseek-app/hackseek/internal/pipeline"
	"github.com/hackseek-app/hackseek/internal/report"
	"github.com/hackseek-app/hackseek/internal/store"
	"github.com/hackseek-app/hackseek/internal/telemetry"
)

func main() {
	var (
		addrFlag   = flag.String("addr", "", "listen address (overrides config)")
		dbFlag     = flag.String("db", "", "path to SQLite database file (overrides config)")
		configFlag = flag.String("config", "", "path to YAML config file")
	)
	flag.Parse()

	// Secrets come from the environment; a local .env is picked up when present.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}
	if *dbFlag != "" {
		cfg.Server.DBPath = *dbFlag
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("telemetry setup: %v", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	st, err := store.NewSQLiteStore(cfg.Server.DBPath)
	if err != nil {
		log.Fatalf("open store (%s): %v", cfg.Server.DBPath, err)
	}
	defer st.Close()
	log.Printf("using sqlite store at %s", cfg.Server.DBPath)

	seed := cfg.Pipeline.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pipe := pipeline.New(rand.New(rand.NewSource(seed)))

	opts := httpapi.Options{
		Store:        st,
		Auth:         auth.NewService(st).WithSessionTTL(time.Duration(cfg.Server.SessionTTLHours) * time.Hour),
		Pipe:         pipe,
		PDF:          report.NewPDFRenderer(),
		Logger:       log.Default(),
		DefaultDepth: cfg.Pipeline.DefaultDepth,
		DefaultLevel: cfg.Pipeline.DefaultLevel,
	}
	if client, err := llm.NewClientFromEnv(); err != nil {
		log.Printf("assistant disabled: %v", err)
	} else {
		opts.Chat = client
		pipe.WithEnhancer(client)
	}

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: httpapi.NewServer(opts)}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("hackseek-server listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
