package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Taian-an/gym-management/config"
	"github.com/Taian-an/gym-management/database"
	"github.com/Taian-an/gym-management/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	// เชื่อมต่อฐานข้อมูล (มี retry ในตัว — ถ้าไม่ขึ้นจริง ๆ ค่อย fail)
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, db)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s (env=%s)", addr, cfg.AppEnv)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
