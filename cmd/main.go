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

	"github.com/dtroode/bookreview-server/internal/api/http/httpctx"
	"github.com/dtroode/bookreview-server/internal/api/http/router"
	httpServer "github.com/dtroode/bookreview-server/internal/api/http/server"
	"github.com/dtroode/bookreview-server/internal/config"
	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
	"github.com/dtroode/bookreview-server/internal/password"
	"github.com/dtroode/bookreview-server/internal/repository/postgres"
	"github.com/dtroode/bookreview-server/internal/server"
	"github.com/dtroode/bookreview-server/internal/service"
	"github.com/dtroode/bookreview-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.AccessTokenTTL)
	hasher := password.NewArgon2(password.Params{
		Time:   cfg.Password.Time,
		MemKiB: cfg.Password.MemKiB,
		Par:    cfg.Password.Par,
	})

	authService := service.NewAuth(userRepo, tokenManager, hasher, cfg.JWT.RefreshTokenTTL, logger)
	reviewService := service.NewReview(reviewRepo, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, reviewService, tokenManager, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

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
