package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/expoflow/gulfood-journey/internal/httpapi"
	"github.com/expoflow/gulfood-journey/internal/journey"
	"github.com/expoflow/gulfood-journey/internal/report"
	"github.com/expoflow/gulfood-journey/internal/store"
)

func main() {
	_ = godotenv.Load()

	dbFlag := flag.String("db", "", "path to SQLite database file (overrides DB_PATH env var)")
	addrFlag := flag.String("addr", "", "listen address (overrides PORT env var)")
	flag.Parse()

	addr := *addrFlag
	if addr == "" {
		addr = ":8080"
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
	}

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		dbPath = "journey.db"
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open sqlite store (%s): %v", dbPath, err)
	}
	defer st.Close()
	if err := st.SeedExhibitors(store.SeedCatalog); err != nil {
		log.Fatalf("failed to seed exhibitor catalog: %v", err)
	}
	log.Printf("using sqlite store at %s", dbPath)

	var planner *journey.Planner
	if caller, err := journey.NewAnthropicCallerFromEnv(); err != nil {
		log.Printf("plan generation disabled: %v", err)
	} else {
		planner = journey.NewPlanner(st, caller)
	}

	handler := httpapi.NewServer(st, planner, report.NewChromiumRenderer())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("journey server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Print("journey server stopped")
}
