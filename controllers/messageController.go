package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"complaintdesk-be/config"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// SendMessage appends a chat message to a complaint's thread. Only the
// filer and the bound agent may post; the sender tag comes from the
// caller's role.
func SendMessage(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}
	ticketID := c.Param("ticketId")

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := complaintCollection.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&complaint); err != nil {
		respondLookupError(c, err, "Complaint not found")
		return
	}

	if !complaint.IsParticipant(id, callerRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not a participant on this complaint"})
		return
	}

	msg, err := complaint.AppendMessage(callerRole(c), input.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Append-only: the thread is only ever pushed to, never rewritten.
	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := complaintCollection.UpdateOne(ctx, bson.M{"ticketId": ticketID}, update); err != nil {
		log.Println("Error appending message:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent", "data": complaint.Messages})
}

// GetMessages returns a complaint's chat thread in arrival order
func GetMessages(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}
	ticketID := c.Param("ticketId")

	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := complaintCollection.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&complaint); err != nil {
		respondLookupError(c, err, "Complaint not found")
		return
	}

	if !complaint.IsParticipant(id, callerRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not a participant on this complaint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat fetched successfully", "data": complaint.Messages})
}
