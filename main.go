package main

import (
	"context"
	"fmt"
	"log"

	"juluka-backend/config"
	"juluka-backend/routes"
	"juluka-backend/services"
	"juluka-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()

	kv, err := store.OpenBolt(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open store file %s: %v", cfg.StorePath, err)
	}
	defer kv.Close()

	st, err := store.New(kv)
	if err != nil {
		// A corrupt entry is refused rather than silently reset; operator
		// intervention on the store file is required.
		log.Fatalf("Failed to load shop data: %v", err)
	}

	insight := services.NewInsightService(context.Background(), cfg.GeminiAPIKey, st)
	scheduler := insight.StartScheduler(cfg.ReportCron)
	defer scheduler.Stop()

	r := routes.SetupRouter(st, insight)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
