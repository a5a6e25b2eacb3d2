package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"complaintdesk-be/config"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// actorID extracts the authenticated caller's ObjectID from the context. It
// writes the error response itself and returns false when the id is missing
// or malformed.
func actorID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return objectID, true
}

// respondLookupError converts a failed document lookup into a response. A
// missing document is a 404 with the given message; anything else is a store
// failure, logged and reported as a generic 500.
func respondLookupError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}
	log.Println("Lookup error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// callerRole returns the role AuthMiddleware stored in the context.
func callerRole(c *gin.Context) models.Role {
	v, _ := c.Get("role")
	role, _ := v.(models.Role)
	return role
}

// userSummary looks up an account and returns the public fields embedded in
// complaint detail responses.
func userSummary(ctx context.Context, id primitive.ObjectID) map[string]interface{} {
	summary := map[string]interface{}{
		"id": id,
	}
	var user models.User
	userCollection := config.GetCollection("users")
	if err := userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err == nil {
		summary["name"] = user.Name
		summary["email"] = user.Email
	}
	return summary
}
