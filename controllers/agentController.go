package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"complaintdesk-be/config"
	"complaintdesk-be/models"
	"complaintdesk-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssignedComplaints lists every complaint bound to the calling agent, each
// joined with its most recent review (nil when the filer has not reviewed
// the current cycle yet).
func AssignedComplaints(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	complaintCollection := config.GetCollection("complaints")
	reviewCollection := config.GetCollection("reviews")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := complaintCollection.Find(ctx, bson.M{"assignedTo": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer cursor.Close(ctx)

	complaints := []models.Complaint{}
	if err := cursor.All(ctx, &complaints); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	type complaintWithReview struct {
		models.Complaint
		User   map[string]interface{} `json:"user"`
		Review *models.Review         `json:"review"`
	}

	result := make([]complaintWithReview, 0, len(complaints))
	latestFirst := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	for _, complaint := range complaints {
		var review models.Review
		item := complaintWithReview{
			Complaint: complaint,
			User:      userSummary(ctx, complaint.UserID),
		}
		if err := reviewCollection.FindOne(ctx, bson.M{"ticketId": complaint.TicketID}, latestFirst).Decode(&review); err == nil {
			item.Review = &review
		}
		result = append(result, item)
	}

	if len(result) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No complaints for your department", "data": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetched all complaints of particular department", "data": result})
}

// StartProgress moves a complaint bound to the calling agent from Open or
// Re-opened to In Progress and notifies the filer.
func StartProgress(c *gin.Context) {
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

	if err := complaint.StartProgress(id); err != nil {
		if errors.Is(err, models.ErrUnassigned) || errors.Is(err, models.ErrNotBoundAgent) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{"status": complaint.Status, "updatedAt": time.Now()}}
	if _, err := complaintCollection.UpdateOne(ctx, bson.M{"ticketId": ticketID}, update); err != nil {
		log.Println("Error updating complaint status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// Notify the filer; delivery failure never affects the transition.
	var filer models.User
	if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": complaint.UserID}).Decode(&filer); err == nil {
		utils.SendEmail(
			filer.Email,
			"Complaint status update",
			fmt.Sprintf("Hi, %s, \n\nYour complaint with Ticket ID %s is now In Progress.\n\nThank you.", filer.Name, ticketID),
		)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint status changed to in-progress", "data": complaint})
}

// ResolveComplaint moves an In Progress complaint bound to the calling agent
// to Resolved. The resolution message is mandatory.
func ResolveComplaint(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}
	ticketID := c.Param("ticketId")

	var input struct {
		ResolutionMsg string `json:"resolutionMsg"`
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

	if err := complaint.Resolve(id, input.ResolutionMsg); err != nil {
		if errors.Is(err, models.ErrUnassigned) || errors.Is(err, models.ErrNotBoundAgent) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"status":            complaint.Status,
		"resolutionMessage": complaint.ResolutionMessage,
		"resolvedAt":        complaint.ResolvedAt,
		"updatedAt":         time.Now(),
	}}
	if _, err := complaintCollection.UpdateOne(ctx, bson.M{"ticketId": ticketID}, update); err != nil {
		log.Println("Error updating complaint status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	var filer models.User
	if err := config.GetCollection("users").FindOne(ctx, bson.M{"_id": complaint.UserID}).Decode(&filer); err == nil {
		utils.SendEmail(
			filer.Email,
			"Complaint status update",
			fmt.Sprintf("Hi, %s, \n\nYour complaint with Ticket ID %s has been resolved.\n\nThank you.", filer.Name, ticketID),
		)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint status changed to Resolved", "data": complaint})
}
