package main

import (
	"log"

	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/handler"
	"cinema_booking/helper"
	"cinema_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // poster uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartMovieStatusScheduler()
	defer helper.StopMovieStatusScheduler()

	// minutely sweeps: release unpaid bookings, expire unused tickets
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", handler.ExpirePendingOrders); err != nil {
		log.Fatal("cannot schedule order expiry:", err)
	}
	if _, err := c.AddFunc("*/5 * * * *", handler.ExpireTickets); err != nil {
		log.Fatal("cannot schedule ticket expiry:", err)
	}
	c.Start()
	defer c.Stop()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
