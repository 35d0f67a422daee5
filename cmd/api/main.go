package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/db"
	"github.com/windoze95/servicehub-api/internal/logger"
	"github.com/windoze95/servicehub-api/internal/repository"
	"github.com/windoze95/servicehub-api/internal/router"
	"go.uber.org/zap"
)

// redisKeyPrefix namespaces the keys this service writes to a shared Redis.
const redisKeyPrefix = "servicehub:"

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	// Load the dashboard service catalog from YAML
	catalog, err := config.LoadServiceCatalog(cfg.EnvVars.ServicesFile)
	if err != nil {
		logger.Get().Fatal("failed to load service catalog", zap.Error(err))
	}
	cfg.Services = catalog

	kv, closeStore := openHistoryStore(ctx, cfg)
	defer closeStore()

	// Create a new gin router
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(ctx, cfg, kv)

	// Run the server
	logger.Get().Info("starting server", zap.String("port", cfg.EnvVars.Port))
	if err := r.Run(":" + cfg.EnvVars.Port); err != nil {
		logger.Get().Error("server stopped", zap.Error(err))
	}
}

// openHistoryStore picks the search history backend: Redis when REDIS_URL is
// set, else Postgres when DATABASE_URL is set, else process memory.
func openHistoryStore(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, func()) {
	log := logger.Get()

	if cfg.EnvVars.RedisUrl != "" {
		store, err := repository.NewRedisStore(cfg.EnvVars.RedisUrl, redisKeyPrefix)
		if err != nil {
			log.Fatal("failed to configure redis", zap.Error(err))
		}
		if err := store.Ping(ctx); err != nil {
			log.Fatal("failed to reach redis", zap.Error(err))
		}
		log.Info("search history stored in redis")
		return store, func() { store.Close() }
	}

	if cfg.EnvVars.DatabaseUrl != "" {
		database, err := db.New(cfg)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatal("failed to get underlying sql.DB", zap.Error(err))
		}
		log.Info("search history stored in postgres")
		return repository.NewGormStore(database), func() { sqlDB.Close() }
	}

	log.Info("search history kept in memory")
	return repository.NewMemoryStore(), func() {}
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
