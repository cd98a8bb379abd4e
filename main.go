package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/leisure-luck/cliparse"
	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/middleware"
	"github.com/danielhkuo/leisure-luck/payment"
	"github.com/danielhkuo/leisure-luck/router"
	"github.com/danielhkuo/leisure-luck/session"
)

func main() {
	var err error

	// Load .env if present; real environment wins
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Competition copy with configured amounts
	comp := competition.Default()
	comp.EntryFee = cfg.EntryFee
	comp.PrizeValue = cfg.PrizeValue
	if err := comp.Validate(); err != nil {
		slog.Error("invalid competition", "error", err)
		os.Exit(1)
	}

	// Sessions own one entry flow each
	sessions := session.NewStore(session.Config{
		Secret:       cfg.SessionSecret,
		TTL:          cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
		FlowOptions: []entry.Option{
			entry.WithDelay(cfg.ConfirmDelay),
			entry.WithConfirm(payment.Confirm(payment.Pending{}, comp.EntryFee, comp.CurrencyCode)),
		},
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sessions.Run(ctx, time.Minute)

	// Create router
	mux := router.NewRouter(sessions, comp)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "confirm_delay", cfg.ConfirmDelay)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Let scheduled confirmations deliver before exiting
	stop()
	sessions.Wait()
	slog.Info("Pending confirmations finished")
}
