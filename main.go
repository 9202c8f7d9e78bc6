package main

import (
	"time"

	"movieflix/config"
	"movieflix/database"
	"movieflix/logger"
	"movieflix/routes"
	"movieflix/services/maintenance"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768,
		WriteBufferSize: 32768,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       50 * 1024 * 1024, // posters arrive as multipart uploads
	})

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	asyncLogger, otpSvc := routes.SetupRoutes(app, db, cfg)

	sweeper := maintenance.NewSweeper(otpSvc, asyncLogger, cfg)
	go sweeper.Run()

	logger.Success("Server is running on ip: " + cfg.AppHost + " port: " + cfg.AppPort)
	if err := app.Listen(cfg.AppHost + ":" + cfg.AppPort); err != nil {
		logger.Error("Server stopped", err)
	}
}
