package main

import (
	"booking/cmd"
	_ "booking/docs"
	"booking/internal/adapters/in/http"
	"booking/internal/adapters/out/fulfilment"
	"booking/internal/adapters/out/kafka"
	"booking/internal/adapters/out/postgres/dispatchrepo"
	"booking/internal/adapters/out/postgres/orderrepo"
	"booking/internal/generated/servers"
	"booking/internal/jobs"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultSchedulingHorizonDays = 5
	defaultPendingReminderHours  = 48
)

// @title Booking Service
// @version 1.0.0
// @description Order lifecycle and scheduling grouping engine for the courier booking portal.
// @BasePath /api/v1
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	notifier, err := kafka.NewAvailabilityNotifier(
		[]string{configs.KafkaHost},
		configs.KafkaAvailabilityRequestsTopic,
		logger,
	)
	if err != nil {
		log.Fatalf("Error creating availability notifier: %v", err)
	}
	defer notifier.Close()

	fulfilmentClient, err := fulfilment.NewHTTPFulfilmentClient(
		configs.FulfilmentAPIURL,
		configs.FulfilmentAPIKey,
	)
	if err != nil {
		log.Fatalf("Error creating fulfilment client: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		notifier,
		fulfilmentClient,
	)

	pendingAge := time.Duration(intConfig(configs.PendingReminderHours, defaultPendingReminderHours)) * time.Hour
	jobManager := jobs.NewJobManager(
		app.CreateSendAvailabilityRemindersCommandHandler(),
		pendingAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                       goDotEnvVariable("HTTP_PORT"),
		DBHost:                         goDotEnvVariable("DB_HOST"),
		DBPort:                         goDotEnvVariable("DB_PORT"),
		DBUser:                         goDotEnvVariable("DB_USER"),
		DBPassword:                     goDotEnvVariable("DB_PASSWORD"),
		DBName:                         goDotEnvVariable("DB_NAME"),
		DBSslMode:                      goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                      goDotEnvVariable("KAFKA_HOST"),
		KafkaAvailabilityRequestsTopic: goDotEnvVariable("KAFKA_AVAILABILITY_REQUESTS_TOPIC"),
		FulfilmentAPIURL:               goDotEnvVariable("FULFILMENT_API_URL"),
		FulfilmentAPIKey:               goDotEnvVariable("FULFILMENT_API_KEY"),
		SchedulingHorizonDays:          os.Getenv("SCHEDULING_HORIZON_DAYS"),
		PendingReminderHours:           os.Getenv("PENDING_REMINDER_HOURS"),
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

func intConfig(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error parsing numeric config %q: %v", value, err)
	}
	return parsed
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
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &dispatchrepo.RecordDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	srv := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateRequestAvailabilityCommandHandler(),
		app.CreateConfirmAvailabilityCommandHandler(),
		app.CreateScheduleLegCommandHandler(),
		app.CreateFinalizeScheduleCommandHandler(),
		app.CreateResetScheduleCommandHandler(),
		app.CreateRecordProgressCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAssignGroupDateCommandHandler(),
		app.CreateDispatchGroupCommandHandler(),
		app.CreateGetPendingScheduleOrdersQueryHandler(),
		app.CreateGetSchedulingGroupsQueryHandler(),
		intConfig(configs.SchedulingHorizonDays, defaultSchedulingHorizonDays),
	)
	servers.RegisterHandlersWithBaseURL(e, srv, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
