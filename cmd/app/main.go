package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shipment/cmd"
	httpadapter "shipment/internal/adapters/in/http"
	"shipment/internal/adapters/out/postgres/bookingrepo"
	"shipment/internal/adapters/out/postgres/tariffrepo"
	"shipment/internal/adapters/out/postgres/trackingrepo"
	"shipment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustPrepareSchema(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceShipmentsCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		CarrierAPIBaseURL: goDotEnvVariable("CARRIER_API_BASE_URL"),
		CarrierTimeout:    goDotEnvVariable("CARRIER_TIMEOUT"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustPrepareSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&bookingrepo.BookingDTO{},
		&trackingrepo.EventDTO{},
		&tariffrepo.TariffDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	tariffRepo := tariffrepo.NewGormTariffRepository(gormDB)
	if err := tariffRepo.SeedIfEmpty(context.Background()); err != nil {
		log.Fatalf("Failed to seed shipping rates: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateBookingCommandHandler(),
		app.CreateGetShippingRatesQueryHandler(),
		app.CreateTrackShipmentQueryHandler(),
		app.CreateCalculateEstimateQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
