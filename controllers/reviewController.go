package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"complaintdesk-be/config"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AddReview records the filer's verdict on a resolved complaint and applies
// the resulting status transition: Satisfied completes the ticket, Not
// Satisfied re-opens it.
func AddReview(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}
	ticketID := c.Param("ticketId")

	var input struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
		Result  string `json:"result" binding:"required,oneof='Satisfied' 'Not Satisfied'"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	complaintCollection := config.GetCollection("complaints")
	reviewCollection := config.GetCollection("reviews")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := complaintCollection.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&complaint); err != nil {
		respondLookupError(c, err, "Complaint not found")
		return
	}

	result := models.ReviewResult(input.Result)
	if err := complaint.ApplyReview(id, result); err != nil {
		if errors.Is(err, models.ErrNotComplaintOwner) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	review := models.Review{
		TicketID:  ticketID,
		UserID:    id,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Result:    result,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := reviewCollection.InsertOne(ctx, review); err != nil {
		log.Println("Error inserting review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	update := bson.M{
		"status":    complaint.Status,
		"updatedAt": time.Now(),
	}
	if complaint.ReopenedAt != nil {
		update["reopenedAt"] = complaint.ReopenedAt
	}
	if _, err := complaintCollection.UpdateOne(ctx, bson.M{"ticketId": ticketID}, bson.M{"$set": update}); err != nil {
		log.Println("Error updating complaint status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review added successfully", "data": review})
}
