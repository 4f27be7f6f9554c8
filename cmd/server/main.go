package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/prithu-10/criminal-dbms-project/internal/app/routes"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/database"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := logger.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// environment may already be set by other means
		logger.Warning("no .env file loaded: %v", err)
	} else {
		logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("invalid database configuration: %v", err)
		os.Exit(1)
	}
	defer pool.Close()
	db := pool.GetDB()

	prepareDatabase(pool, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	seedDefaultOfficer(serviceContainer)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	routes.SetupRouterWithContainer(r, serviceContainer)

	printSystemInfo(pool)

	port := cfg.ServerPort
	logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		logger.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// prepareDatabase migrates the schema and installs the stored procedures.
// Failures are logged, not fatal: the server still comes up and serves
// degraded pages until the database is reachable again.
func prepareDatabase(pool *database.ConnectionPool, cfg *config.Config) {
	db := pool.GetDB()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Warning("skipping migration, database unavailable: %v", err)
		return
	}

	if cfg.DBMigrationMode == "drop" {
		logger.Warning("running in drop mode, all tables will be dropped and recreated")
		if err := database.DropAndRecreate(db); err != nil {
			logger.Error("drop and recreate failed: %v", err)
			return
		}
	} else {
		if err := database.AutoMigrate(db); err != nil {
			logger.Error("migration failed: %v", err)
			return
		}
	}

	if err := database.InstallProcedures(db); err != nil {
		logger.Error("stored procedure install failed: %v", err)
	}
}

// seedDefaultOfficer makes sure the default login exists.
func seedDefaultOfficer(c *container.ServiceContainer) {
	officerService := c.GetService("officer").(services.InterfaceOfficerService)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := officerService.EnsureDefaultOfficer(ctx); err != nil {
		logger.Warning("default officer seed skipped: %v", err)
	}
}

// printSystemInfo logs runtime and pool details at startup.
func printSystemInfo(pool *database.ConnectionPool) {
	logger.Info("go version: %s, cpus: %d", runtime.Version(), runtime.NumCPU())
	if stats, err := pool.Stats(); err == nil {
		logger.Info("database pool: %v", stats)
	}
}
