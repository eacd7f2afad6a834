package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripbuddy/cmd/fx/catalog_fx"
	"tripbuddy/cmd/fx/chat_fx"
	"tripbuddy/cmd/fx/controllers_fx"
	"tripbuddy/cmd/fx/db_fx"
	"tripbuddy/cmd/fx/itinerary_fx"
	"tripbuddy/cmd/fx/rating_fx"
	"tripbuddy/internal/api/controllers"
	"tripbuddy/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		chat_fx.Module,
		rating_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	ratingController *controllers.RatingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, chatController, ratingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	ratingController *controllers.RatingController) {

	tripGroup := r.Group("/api/trip")
	tripGroup.POST("/create", tripController.CreateTrip)
	tripGroup.POST("/swap-alternatives", tripController.GetSwapAlternatives)
	tripGroup.POST("/swap", tripController.SwapActivity)
	tripGroup.GET("/:itineraryId", tripController.GetItinerary)

	chatGroup := r.Group("/api/chat")
	chatGroup.POST("/message", chatController.PostMessage)
	chatGroup.GET("/history", chatController.GetHistory)
	chatGroup.GET("/history/:itineraryId", chatController.GetHistory)

	ratingGroup := r.Group("/api/rating")
	ratingGroup.POST("", ratingController.AddRating)
	ratingGroup.GET("/:itineraryId", ratingController.ListRatings)
}
