package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"accounts/internal/config"
	"accounts/internal/observability/logging"
	"accounts/internal/observability/metrics"
	impl "accounts/internal/service/impl"
	"accounts/internal/store"
	httpx "accounts/internal/transport/http"
	"accounts/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "accounts",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	metrics.MustRegister()

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	st := store.New(gdb)

	passwords := impl.NewPasswordServiceBcrypt()
	tokens := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		TTL:        cfg.TokenTTL,
		SigningKey: []byte(cfg.SigningKey),
	})

	signup := impl.NewSignupServiceImpl(st, passwords)
	auth := impl.NewAuthServiceImpl(st, passwords, tokens)
	profiles := impl.NewProfileServiceImpl(st, passwords)
	devices := impl.NewDeviceServiceImpl(st, passwords)

	router := httpx.NewRouter(signup, auth, profiles, devices, tokens)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("accounts service listening", "addr", srv.Addr, "issuer", cfg.Issuer)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
