package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres/agentrepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	publisher := createPublisher(configs, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		root.CreateAssignPendingDeliveriesCommandHandler(),
		configs.AutoAssignCron,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:   goDotEnvVariable("KAFKA_BROKERS"),
		AutoAssignCron: goDotEnvVariable("AUTO_ASSIGN_CRON"),
	}
	if config.AutoAssignCron == "" {
		config.AutoAssignCron = "*/10 * * * * *"
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&agentrepo.AgentDTO{}, &deliveryrepo.DeliveryDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createPublisher builds the Kafka event sink. Without brokers configured the
// service runs with events disabled; publish failures never fail a command
// either way.
func createPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if configs.KafkaBrokers == "" {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
		return nil
	}

	producer, err := kafka.NewSyncProducer(strings.Split(configs.KafkaBrokers, ","))
	if err != nil {
		log.Fatalf("Failed to create kafka producer: %v", err)
	}

	return kafka.NewBestEffortPublisher(kafka.NewSaramaEventPublisher(producer), logger)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		root.CreateCreateDeliveryCommandHandler(),
		root.CreateUpdateDeliveryCommandHandler(),
		root.CreateAssignAgentCommandHandler(),
		root.CreateAutoAssignDeliveryCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateRegisterAgentCommandHandler(),
		root.CreateInviteAgentCommandHandler(),
		root.CreateApproveAgentCommandHandler(),
		root.CreateUpdateAgentStatusCommandHandler(),
		root.CreateDeleteAgentCommandHandler(),
		root.CreateGetAllDeliveriesQueryHandler(),
		root.CreateGetPendingDeliveriesQueryHandler(),
		root.CreateGetDeliveriesByCustomerQueryHandler(),
		root.CreateGetDeliveriesByAgentQueryHandler(),
		root.CreateGetDeliveryByOrderQueryHandler(),
		root.CreateGetAvailableAgentsQueryHandler(),
		root.CreateGetPendingAgentsQueryHandler(),
		root.CreateGetAgentByIDQueryHandler(),
		root.CreateGetAgentByEmailQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
