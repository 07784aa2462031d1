package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"attendly.com/attendly/core"
	"attendly.com/attendly/web/handlers/attendance"
	"attendly.com/attendly/web/handlers/auth"
	"attendly.com/attendly/web/handlers/employee"
	"attendly.com/attendly/web/handlers/leave"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DSN")
	fmt.Printf("using DSN: %s\n", dsn)

	db, err := core.Open(dsn, 10, core.LogLevelWarn)
	if err != nil {
		log.Fatal(err)
	}

	base64Secret := os.Getenv("SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// employee portal endpoints: check-in/out and leave submission
	portal := r.Group("")

	// admin dashboard endpoints
	admin := r.Group("")
	admin.Use(middlewares.Authentication(jwtSecret))

	auth.Register(portal, db, jwtSecret)
	attendance.Register(portal, admin, db)
	leave.Register(portal, admin, db)
	employee.Register(admin, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run("0.0.0.0:" + port)
}
