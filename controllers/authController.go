package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"complaintdesk-be/config"
	"complaintdesk-be/models"
	"complaintdesk-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SignupUser registers a new filer account and its public profile record
func SignupUser(c *gin.Context) {
	signupUser(c, config.GetCollection("users"), config.GetCollection("profiles"))
}

func signupUser(c *gin.Context, userCollection, profileCollection *mongo.Collection) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error checking existing user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email already exists"})
		return
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	result, err := userCollection.InsertOne(ctx, user)
	if err != nil {
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	profile := models.Profile{
		Name:      user.Name,
		Email:     user.Email,
		UserID:    result.InsertedID.(primitive.ObjectID),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := profileCollection.InsertOne(ctx, profile); err != nil {
		log.Println("Error inserting profile:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// LoginUser verifies credentials and issues a session token
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		respondLookupError(c, err, "User not found")
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login Successful",
		"token":     token,
		"role":      user.Role,
		"name":      user.Name,
		"email":     user.Email,
		"id":        user.ID,
		"createdAt": user.CreatedAt,
	})
}

// DeleteAccount removes the caller's account together with its profile,
// complaints and reviews. The cascade is manual; the store enforces nothing.
func DeleteAccount(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection("users").DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Println("Error deleting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if _, err := config.GetCollection("profiles").DeleteOne(ctx, bson.M{"userId": id}); err != nil {
		log.Println("Error deleting profile:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if _, err := config.GetCollection("complaints").DeleteMany(ctx, bson.M{"userId": id}); err != nil {
		log.Println("Error deleting complaints:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if _, err := config.GetCollection("reviews").DeleteMany(ctx, bson.M{"userId": id}); err != nil {
		log.Println("Error deleting reviews:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
