package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"orderadmin/cmd"
	httpin "orderadmin/internal/adapters/in/http"
	"orderadmin/internal/adapters/out/postgres/customerrepo"
	"orderadmin/internal/adapters/out/postgres/orderrepo"
	"orderadmin/internal/adapters/out/postgres/paymentrepo"
	"orderadmin/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStalePendingTTL = 24 * time.Hour

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustGormOpen(configs)
	migrateDb(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StalePendingTTL,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		AdminEmail:        goDotEnvVariable("ADMIN_EMAIL"),
		AdminPasswordHash: goDotEnvVariable("ADMIN_PASSWORD_HASH"),
		MediaCloudName:    goDotEnvVariable("MEDIA_CLOUD_NAME"),
		MediaFolder:       goDotEnvVariable("MEDIA_FOLDER"),
		StalePendingTTL:   getStalePendingTTL(),
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

func getStalePendingTTL() time.Duration {
	raw := goDotEnvVariable("STALE_PENDING_TTL")
	if raw == "" {
		return defaultStalePendingTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Fatalf("STALE_PENDING_TTL must be a positive duration, got %q", raw)
	}
	return ttl
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it does not exist yet. Lets a fresh deployment
// come up against an empty postgres instance.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).
		Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return db
}

func migrateDb(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&paymentrepo.PaymentDTO{},
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// gormPinger adapts the gorm connection pool to the health endpoint.
type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateUpdatePaymentCommandHandler(),
		app.CreateGetOrderTransitionsQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderDetailsQueryHandler(),
		app.CreateGetOrderItemsQueryHandler(),
		app.CreateGetDashboardSummaryQueryHandler(),
		app.CreateGetCustomerDetailsQueryHandler(),
		app.CreateGetPaymentDetailsQueryHandler(),
		gormPinger{db: app.GormDB()},
	)

	verifier := httpin.NewCredentialVerifier(configs.AdminEmail, configs.AdminPasswordHash)

	e := echo.New()
	server.RegisterRoutes(e, httpin.BasicAuthMiddleware(verifier))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
