package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anhminhnguyen3110/chatbot/internal/api/http/router"
	httpServer "github.com/anhminhnguyen3110/chatbot/internal/api/http/server"
	"github.com/anhminhnguyen3110/chatbot/internal/config"
	"github.com/anhminhnguyen3110/chatbot/internal/logger"
	"github.com/anhminhnguyen3110/chatbot/internal/model"
	"github.com/anhminhnguyen3110/chatbot/internal/password"
	"github.com/anhminhnguyen3110/chatbot/internal/repository/postgres"
	"github.com/anhminhnguyen3110/chatbot/internal/server"
	"github.com/anhminhnguyen3110/chatbot/internal/service"
	"github.com/anhminhnguyen3110/chatbot/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewHasher()

	authService := service.NewAuth(userRepo, hasher, tokenManager, cfg.JWT.AccessTokenTTL, logger)

	srv := registerHTTPServer(logger, authService, cfg.CORS.AllowOrigins, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	authService *service.Auth,
	allowOrigins string,
	addr string,
) *httpServer.HTTPServer {
	r := router.New(authService, allowOrigins, logger)
	app := r.Register()

	return httpServer.NewHTTPServer(app, addr)
}
