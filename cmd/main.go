package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/legacy"
	"github.com/LinamariaMartinez/eventMaster-sub000/routes"
)

func main() {
	config.LoadEnv()

	// Conexión DB + AutoMigrate
	config.ConnectDB()

	// Store aparte para el prototipo viejo de invitaciones
	legacyPath := os.Getenv("LEGACY_DB_PATH")
	if legacyPath == "" {
		legacyPath = "./legacy.db"
	}
	legacyStore, err := legacy.Open(legacyPath)
	if err != nil {
		log.Fatalf("failed to open legacy store: %v", err)
	}
	defer legacyStore.Close()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "http://localhost:5173" || origin == "https://eventmaster.app"
		},
		AllowMethods:           []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:           []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:          []string{"Content-Length", "Content-Disposition"},
		AllowCredentials:       true,
		MaxAge:                 12 * time.Hour,
		AllowWildcard:          true,
		AllowBrowserExtensions: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "eventMaster server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	routes.SetupRoutes(r, legacyStore)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	r.Run(":" + port)
}
