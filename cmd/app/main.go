package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"partnerconsole/cmd"
	"partnerconsole/internal/adapters/out/postgres/sessionrepo"
)

func main() {
	configs := getConfigs()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err = gormDB.AutoMigrate(&sessionrepo.SessionDTO{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           mustEnv("DB_HOST"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           mustEnv("DB_USER"),
		DBPassword:       mustEnv("DB_PASSWORD"),
		DBName:           mustEnv("DB_NAME"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		UpstreamBaseURL:  mustEnv("UPSTREAM_BASE_URL"),
		UpstreamTimeout:  durationEnv("UPSTREAM_TIMEOUT", 15*time.Second),
		AccessTokenTTL:   durationEnv("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL:  durationEnv("REFRESH_TOKEN_TTL", 14*24*time.Hour),
		MaxProfileAge:    durationEnv("MAX_PROFILE_AGE", 15*time.Minute),
		OrderRefreshSpec: envOr("ORDER_REFRESH_SPEC", "*/30 * * * * *"),
		SessionSweepSpec: envOr("SESSION_SWEEP_SPEC", "0 0 * * * *"),
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return value
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return parsed
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
