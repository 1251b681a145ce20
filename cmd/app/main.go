package main

import (
	"fmt"
	"os"

	"github.com/riosgabriel/taq-u-app/cmd"
	httpadapter "github.com/riosgabriel/taq-u-app/internal/adapters/in/http"
	"github.com/riosgabriel/taq-u-app/internal/adapters/out/postgres/customerrepo"
	"github.com/riosgabriel/taq-u-app/internal/adapters/out/postgres/driverrepo"
	"github.com/riosgabriel/taq-u-app/internal/adapters/out/postgres/orderrepo"
	"github.com/riosgabriel/taq-u-app/internal/adapters/out/redis"
	"github.com/riosgabriel/taq-u-app/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	gormDB := mustConnectDB(configs)

	trackingCache, err := redis.NewTrackingCache(configs.RedisURL)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer trackingCache.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, trackingCache, logger)

	jobManager := jobs.NewJobManager(app.CreatePendingOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisURL:         goDotEnvVariable("REDIS_URL"),
		TrackingCacheTTL: goDotEnvVariable("TRACKING_CACHE_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories classify.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.PackageDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *zap.Logger) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCustomerService(),
		app.CreateDriverService(),
		app.CreateOrderService(),
		app.CreateTrackPackageQueryHandler(),
		app.CreatePendingOrdersQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
