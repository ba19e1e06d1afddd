package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authservice "github.com/avasilyev/blogd/internal/auth/service"
	blogrepo "github.com/avasilyev/blogd/internal/blog/repository"
	blogservice "github.com/avasilyev/blogd/internal/blog/service"
	"github.com/avasilyev/blogd/internal/common/clock"
	"github.com/avasilyev/blogd/internal/common/config"
	commoncrypto "github.com/avasilyev/blogd/internal/common/crypto"
	"github.com/avasilyev/blogd/internal/common/db"
	commonhttp "github.com/avasilyev/blogd/internal/common/http"
	"github.com/avasilyev/blogd/internal/common/logger"
	srv "github.com/avasilyev/blogd/internal/common/server"
	"github.com/avasilyev/blogd/internal/session"
	userrepo "github.com/avasilyev/blogd/internal/user/repository"
	"github.com/avasilyev/blogd/internal/web"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "blogd", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := db.Connect(log, cfg.MongoURL)
	database := client.Database(cfg.MongoDatabase)

	postRepo := blogrepo.NewMongoRepository(database)
	userRepo := userrepo.NewMongoRepository(database)
	hasher := commoncrypto.NewArgon2Hasher()
	sessions := session.NewManager(cfg.SessionSecret)

	authService := authservice.NewAuthService(userRepo, hasher, sessions, log)
	postService := blogservice.NewPostService(postRepo, clock.NewRealClock(), log)

	render, err := web.NewRenderer(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	handler := web.NewHandler(postService, authService, sessions, render, log, cfg.RequestTimeout)
	limiter := commonhttp.NewCredentialRateLimiter()

	mux := http.NewServeMux()
	mux.Handle("/", handler.Routes(cfg.StaticDir, limiter))
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())

	finalHandler := commonhttp.BuildBaseHandler(log, mux)

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), finalHandler)

	hooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			log.Infof("closing document store connection")
			return client.Disconnect(ctx)
		},
	}

	srv.StartWithGracefulShutdown(server, log, hooks)
}
