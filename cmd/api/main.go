package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/bay-services/dashboard/backend/internal/config"
	"github.com/bay-services/dashboard/backend/internal/dashboard"
	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/handler"
	"github.com/bay-services/dashboard/backend/internal/metrics"
	"github.com/bay-services/dashboard/backend/internal/realtime"
	"github.com/bay-services/dashboard/backend/internal/repository"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * config
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	/**********************************************
	 * database
	 **********************************************/
	repo, err := repository.Open(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer repo.Close()

	/**********************************************
	 * initial administrator
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash initial administrator password", "error", err)
		return
	}
	initialAdmin := &domain.User{
		Email:        cfg.InitialAdmin.Email,
		PasswordHash: string(passwordHash),
		DisplayName:  cfg.InitialAdmin.DisplayName,
		Role:         domain.RoleManager,
	}
	created, err := repo.EnsureUser(initialAdmin)
	if err != nil {
		logger.Error("failed to create initial administrator", "error", err)
		return
	}
	if created {
		logger.Info("initial administrator created", "email", initialAdmin.Email)
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		domain.MailQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to declare queue", "error", err)
		return
	}

	/**********************************************
	 * redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:    cfg.Redis.Password,
		DB:          0,
		DialTimeout: time.Duration(cfg.Redis.ConnectTimeout) * time.Second,
	})
	defer rdb.Close()

	notifier := realtime.NewNotifier(rdb)

	/**********************************************
	 * dashboard watcher
	 **********************************************/
	metricsManager := metrics.NewManager()

	watcher := dashboard.NewWatcher(repo,
		dashboard.WithTickInterval(time.Duration(cfg.Dashboard.TickInterval)*time.Millisecond),
		dashboard.WithReloadInterval(time.Duration(cfg.Dashboard.ReloadInterval)*time.Second),
		dashboard.WithObserver(metricsManager),
	)

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()

	changes, err := notifier.Subscribe(watchCtx)
	if err != nil {
		// the reload interval still picks changes up
		logger.Error("failed to subscribe to change notifications", "error", err)
		changes = nil
	}
	go watcher.Run(watchCtx, changes)

	/**********************************************
	 * handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, handler.Dependencies{
		Repository:  repo,
		MailChannel: ch,
		RedisClient: rdb,
		Notifier:    notifier,
		Metrics:     metricsManager,
		Watcher:     watcher,
	})
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server")
	stopWatching()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
