package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"complaintdesk-be/config"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ViewProfile returns the caller's profile record
func ViewProfile(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	profileCollection := config.GetCollection("profiles")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var profile models.Profile
	if err := profileCollection.FindOne(ctx, bson.M{"userId": id}).Decode(&profile); err != nil {
		respondLookupError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile fetched successfully", "data": profile})
}

// UpdateProfile changes the display name on the caller's profile record
func UpdateProfile(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name" binding:"required,max=50"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profileCollection := config.GetCollection("profiles")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Profile
	after := options.After
	err := profileCollection.FindOneAndUpdate(
		ctx,
		bson.M{"userId": id},
		bson.M{"$set": bson.M{"name": input.Name, "updatedAt": time.Now()}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		respondLookupError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "data": updated})
}

// CreateComplaint registers a new complaint for the caller with a fresh
// ticket id and status Open
func CreateComplaint(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var input struct {
		Category    string  `json:"category" binding:"required"`
		Description string  `json:"desc" binding:"required,max=500"`
		ImageURL    *string `json:"img,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	complaint := models.Complaint{
		TicketID:    uuid.NewString(),
		Category:    models.Category(input.Category),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		UserID:      id,
		AssignedTo:  nil,
		Status:      models.StatusOpen,
		Messages:    []models.ThreadMessage{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := complaintCollection.InsertOne(ctx, complaint); err != nil {
		log.Println("Error inserting complaint:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Complaint registered successfully", "data": complaint})
}

// MyComplaints lists every complaint the caller has filed
func MyComplaints(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := complaintCollection.Find(ctx, bson.M{"userId": id})
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

	if len(complaints) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No complain", "data": complaints})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetched all complaints", "data": complaints})
}

// SingleComplaint returns one complaint by ticket id with the filer and the
// assigned agent embedded. Filers only see their own tickets; agents only
// the ones bound to them.
func SingleComplaint(c *gin.Context) {
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
		c.JSON(http.StatusForbidden, gin.H{"message": "This complaint does not belong to you"})
		return
	}

	detail := gin.H{
		"message": "fetched complain",
		"data":    complaint,
		"user":    userSummary(ctx, complaint.UserID),
	}
	if complaint.AssignedTo != nil {
		detail["assignedTo"] = userSummary(ctx, *complaint.AssignedTo)
	}

	c.JSON(http.StatusOK, detail)
}

// CompletedComplaints lists the caller's complaints that reached the
// terminal Completed state
func CompletedComplaints(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := complaintCollection.Find(ctx, bson.M{"userId": id, "status": models.StatusCompleted})
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

	if len(complaints) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No completed complain", "data": complaints})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetched completed complaints", "data": complaints})
}
