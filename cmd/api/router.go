package api

import (
	"net/http"

	authdelivery "github.com/albertomonterom/vinkula-backend/internal/auth/delivery"
	authUsecase "github.com/albertomonterom/vinkula-backend/internal/auth/usecase"
	destdelivery "github.com/albertomonterom/vinkula-backend/internal/destination/delivery"
	destUsecase "github.com/albertomonterom/vinkula-backend/internal/destination/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, destUc destUsecase.DestinationUsecase) {
	r.Use(RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
	}))

	authHandler := authdelivery.NewAuthHandler(authUc)
	destHandler := destdelivery.NewDestinationHandler(destUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.PUT("/me", authdelivery.AuthMiddleware(authUc), authHandler.EditMe)
		}

		api.GET("/categories", destHandler.ListCategories)
		api.GET("/destinations", destHandler.List)
		api.GET("/providers/:idProvider/destinations", destHandler.ListByProvider)

		// Destination writes: credential first, then role policy, before any
		// side-effecting step.
		writes := api.Group("/destinations")
		writes.Use(authdelivery.AuthMiddleware(authUc), authdelivery.RequireDestinationWriter())
		{
			writes.POST("", destHandler.Create)
			writes.PUT("/:idDestination", destHandler.Edit)
		}
	}
}
