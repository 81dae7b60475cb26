package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/app"
	"github.com/m04kA/SMC-HearingService/internal/config"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HearingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HearingService/pkg/logger"
	"github.com/m04kA/SMC-HearingService/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	tokenUser := flag.Int64("issue-token", 0, "выпустить токен для пользователя и выйти")
	tokenRoles := flag.String("roles", "", "роли токена через запятую")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *tokenUser != 0 {
		issueToken(cfg, *tokenUser, *tokenRoles)
		return
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HearingService...")
	log.Info("Configuration loaded from %s (driver=%s)", *configPath, cfg.Database.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	var repos app.Repositories
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		if cfg.Database.SeedFile != "" {
			seed, err := memory.LoadSeed(cfg.Database.SeedFile)
			if err != nil {
				log.Fatal("Failed to load seed file %s: %v", cfg.Database.SeedFile, err)
			}
			if err := store.Apply(seed); err != nil {
				log.Fatal("Failed to apply seed file %s: %v", cfg.Database.SeedFile, err)
			}
			log.Info("In-memory storage seeded from %s", cfg.Database.SeedFile)
		}
		repos = app.MemoryRepositories(store)

	default:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var wrappedDB *dbmetrics.DB
		if cfg.Metrics.Enabled {
			wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			wrappedDB = dbmetrics.Wrap(db, nil)
		}
		repos = app.PostgresRepositories(wrappedDB)
	}

	r, err := app.NewRouter(cfg, repos, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to build router: %v", err)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// issueToken печатает токен на сутки для локальной работы с memory-хранилищем
func issueToken(cfg *config.Config, userID int64, roles string) {
	var list []string
	for _, role := range strings.Split(roles, ",") {
		if role = strings.TrimSpace(role); role != "" {
			list = append(list, strings.ToUpper(role))
		}
	}

	token, err := middleware.IssueToken([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, userID, list, 24*time.Hour, time.Now())
	if err != nil {
		fmt.Printf("Failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
