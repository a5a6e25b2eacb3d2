package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"complaintdesk-be/config"
	"complaintdesk-be/models"
	"complaintdesk-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	defer config.DisconnectDB()

	if err := models.EnsureUserIndexes(config.GetCollection("users")); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := models.EnsureComplaintIndexes(config.GetCollection("complaints")); err != nil {
		log.Fatalf("Failed to create complaint indexes: %v", err)
	}

	config.ConnectRedis()

	seedAdmin()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}
	corsConfig.AllowOrigins = []string{frontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r)
	routes.UserRoutes(r)
	routes.ReviewRoutes(r)
	routes.AgentRoutes(r)
	routes.AdminRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD when
// it does not exist yet. Skipped silently when the env vars are unset.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("Error checking for admin account: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := models.User{
		Name:      "Admin",
		Email:     email,
		Password:  password,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := admin.HashPassword(); err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}
	if _, err := userCollection.InsertOne(ctx, admin); err != nil {
		log.Printf("Error creating admin account: %v", err)
		return
	}
	log.Println("Admin account created")
}
