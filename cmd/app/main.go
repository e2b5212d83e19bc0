package main

import (
	"fmt"
	"os"

	"orders/cmd"
	orderhttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	var gormDB *gorm.DB
	if configs.StorageBackend != "inmemory" {
		gormDB = mustOpenDB(configs)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	if job := app.CreateOutboxDispatcherJob(); job != nil {
		if err := job.Start(); err != nil {
			log.Fatalf("Failed to start outbox dispatcher: %v", err)
		}
		defer job.Stop()
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		StorageBackend:    goDotEnvVariable("STORAGE_BACKEND"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		PricingServiceURL: goDotEnvVariable("PRICING_SERVICE_URL"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&outboxrepo.MessageDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := orderhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemToOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
