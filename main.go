package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureAddressIndexes(db); err != nil {
		log.Printf("⚠️ address index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("⚠️ order index warning: %v", err)
	}
	if err := database.EnsureFeelingIndexes(db); err != nil {
		log.Printf("⚠️ feeling index warning: %v", err)
	}

	r := gin.Default()

	r.POST("/orders", handlers.CreateOrder(db))
	r.GET("/feelings/catalog", handlers.GetFeelingCatalog())

	authed := r.Group("/")
	authed.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		authed.GET("/addresses", handlers.GetAddresses(db))
		authed.POST("/addresses", handlers.AddAddress(db))
		authed.PUT("/addresses/:addressId", handlers.UpdateAddress(db))
		authed.DELETE("/addresses/:addressId", handlers.DeleteAddress(db))
		authed.PATCH("/addresses/:addressId/default", handlers.SetDefaultAddress(db))

		authed.POST("/posts/:postId/feelings", handlers.CreateFeeling(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
