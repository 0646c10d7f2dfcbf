package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"learnflow/config"
	"learnflow/database"
	authRoutes "learnflow/routers/authRoutes"
	cartRoutes "learnflow/routers/cartRoutes"
	catalogRoutes "learnflow/routers/catalogRoutes"
	checkoutRoutes "learnflow/routers/checkoutRoutes"
	learningRoutes "learnflow/routers/learningRoutes"
	"learnflow/services"
	"learnflow/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	services.Init()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	learningRoutes.SetupLearningRoutes(app)

	utils.StartSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
