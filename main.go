package main

import (
	"context"
	stdlog "log"

	api "github.com/albertomonterom/vinkula-backend/cmd/api"
	authRepo "github.com/albertomonterom/vinkula-backend/internal/auth/repository"
	authUsecase "github.com/albertomonterom/vinkula-backend/internal/auth/usecase"
	destRepo "github.com/albertomonterom/vinkula-backend/internal/destination/repository"
	destUsecase "github.com/albertomonterom/vinkula-backend/internal/destination/usecase"
	"github.com/albertomonterom/vinkula-backend/pkg/config"
	"github.com/albertomonterom/vinkula-backend/pkg/log"
	"github.com/albertomonterom/vinkula-backend/pkg/record"
	"github.com/albertomonterom/vinkula-backend/pkg/storage"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := log.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		stdlog.Fatal("Failed to initialize logger:", err)
	}
	logger := log.GetLogger()

	// AWS clients are created once and shared across requests
	awsConfig, err := awscfg.LoadDefaultConfig(context.Background(), awscfg.WithRegion(cfg.AWSRegion))
	if err != nil {
		logger.WithError(err).Fatal("Failed to load AWS configuration")
	}

	store := record.NewDynamoStore(dynamodb.NewFromConfig(awsConfig))
	objects := storage.NewS3Store(s3.NewFromConfig(awsConfig), cfg.S3Bucket, cfg.AWSRegion)

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(store, cfg.UsersTable)
	destinationRepository := destRepo.NewDestinationRepository(store, cfg.DestinationsTable)
	categoryRepository := destRepo.NewCategoryRepository(store, cfg.CategoriesTable)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	destUc := destUsecase.NewDestinationUsecase(destinationRepository, categoryRepository, objects)

	r := gin.Default()
	api.SetupRoutes(r, authUc, destUc)

	logger.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
