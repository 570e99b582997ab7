package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/kxng0109/taskflow/internal/adapters/handler/http"
	bcrypthash "github.com/kxng0109/taskflow/internal/adapters/hash/bcrypt"
	"github.com/kxng0109/taskflow/internal/adapters/repository/postgres"
	jwttoken "github.com/kxng0109/taskflow/internal/adapters/token/jwt"
	"github.com/kxng0109/taskflow/internal/config"
	"github.com/kxng0109/taskflow/internal/core/services"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	tokens := jwttoken.NewProvider([]byte(cfg.JWTSecret), cfg.JWTExpiration(), log)
	hasher := bcrypthash.NewHasher()
	authorizer := services.NewAuthorizer(userRepo)

	authSvc := services.NewAuthService(userRepo, hasher, tokens)
	userSvc := services.NewUserService(userRepo)
	projectSvc := services.NewProjectService(projectRepo, authorizer)
	taskSvc := services.NewTaskService(taskRepo, projectRepo, authorizer)

	handler := http.NewHandler(
		tokens,
		userRepo,
		http.NewAuthHandler(authSvc),
		http.NewUserHandler(userSvc),
		http.NewProjectHandler(projectSvc),
		http.NewTaskHandler(taskSvc, userSvc),
		log,
	)

	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
