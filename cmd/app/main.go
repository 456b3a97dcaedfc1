package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"triptailor/cmd/fx/adventure_fx"
	"triptailor/cmd/fx/conversation_fx"
	"triptailor/cmd/fx/db_fx"
	"triptailor/cmd/fx/memcache_fx"
	"triptailor/cmd/fx/preference_fx"
	"triptailor/internal/api/controllers"
	"triptailor/internal/infra"
	"triptailor/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		preference_fx.Module,
		conversation_fx.Module,
		adventure_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
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
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	conversationController *controllers.ConversationController,
	adventureController *controllers.AdventureController,
	preferenceController *controllers.PreferenceController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, conversationController, adventureController, preferenceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	conversationController *controllers.ConversationController,
	adventureController *controllers.AdventureController,
	preferenceController *controllers.PreferenceController) {

	conversationGroup := r.Group("/conversations")
	conversationGroup.POST("", conversationController.StartConversationHandler)
	conversationGroup.GET("/:id", conversationController.GetConversationHandler)

	adventureGroup := r.Group("/adventures")
	adventureGroup.POST("/generate", adventureController.GenerateAdventureHandler)

	preferenceGroup := r.Group("/preferences")
	preferenceGroup.PUT("", preferenceController.SavePreferencesHandler)
	preferenceGroup.GET("/:deviceId", preferenceController.GetPreferencesHandler)
}
