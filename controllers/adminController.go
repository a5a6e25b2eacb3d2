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

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAgent registers an agent account bound to one of the fixed
// categories. Category is set here and immutable afterwards.
func CreateAgent(c *gin.Context) {
	createAgent(c, config.GetCollection("users"))
}

func createAgent(c *gin.Context, userCollection *mongo.Collection) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error checking existing agent:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Agent with this email already exists"})
		return
	}

	category := models.Category(input.Category)
	agent := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Role:      models.RoleAgent,
		Category:  &category,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := agent.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	result, err := userCollection.InsertOne(ctx, agent)
	if err != nil {
		log.Println("Error inserting agent:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	agent.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"message": "Agent created successfully", "data": agent})
}

// GetAllUsers lists every filer's profile record
func GetAllUsers(c *gin.Context) {
	profileCollection := config.GetCollection("profiles")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := profileCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer cursor.Close(ctx)

	profiles := []models.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if len(profiles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No user exist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetched all users", "data": profiles})
}

// GetAllAgents lists every agent account
func GetAllAgents(c *gin.Context) {
	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := userCollection.Find(ctx, bson.M{"role": models.RoleAgent})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer cursor.Close(ctx)

	agents := []models.User{}
	if err := cursor.All(ctx, &agents); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if len(agents) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No agent exist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetched all agents", "data": agents})
}

// GetAllComplaints lists every complaint with filer and assignee embedded
func GetAllComplaints(c *gin.Context) {
	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := complaintCollection.Find(ctx, bson.M{})
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
		c.JSON(http.StatusNotFound, gin.H{"message": "No complaint exist"})
		return
	}

	type complaintDetail struct {
		models.Complaint
		User  map[string]interface{} `json:"user"`
		Agent map[string]interface{} `json:"agent,omitempty"`
	}

	details := make([]complaintDetail, 0, len(complaints))
	for _, complaint := range complaints {
		detail := complaintDetail{
			Complaint: complaint,
			User:      userSummary(ctx, complaint.UserID),
		}
		if complaint.AssignedTo != nil {
			detail.Agent = userSummary(ctx, *complaint.AssignedTo)
		}
		details = append(details, detail)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetched all complaint", "data": details})
}

// GetUnassignedComplaints lists complaints with no agent bound. An empty
// list is a normal outcome, not an error.
func GetUnassignedComplaints(c *gin.Context) {
	complaintCollection := config.GetCollection("complaints")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := complaintCollection.Find(ctx, bson.M{"assignedTo": nil})
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
		c.JSON(http.StatusOK, gin.H{"message": "No unassigned complaint exist", "data": complaints})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetched unassigned complaints", "data": complaints})
}

// GetAgentsByCategory resolves a ticket's category and returns the agents
// eligible for assignment, projected down to name, email and category. An
// empty candidate set is reported distinctly from an unknown ticket.
func GetAgentsByCategory(c *gin.Context) {
	getAgentsByCategory(c, config.GetCollection("complaints"), config.GetCollection("users"))
}

func getAgentsByCategory(c *gin.Context, complaintCollection, userCollection *mongo.Collection) {
	ticketID := c.Param("ticketId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := complaintCollection.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&complaint); err != nil {
		respondLookupError(c, err, "Complaint not found")
		return
	}

	projection := options.Find().SetProjection(bson.M{"name": 1, "email": 1, "category": 1})
	cursor, err := userCollection.Find(ctx, bson.M{"role": models.RoleAgent, "category": complaint.Category}, projection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer cursor.Close(ctx)

	agents := []models.User{}
	if err := cursor.All(ctx, &agents); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if len(agents) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No agent exist for %s category", complaint.Category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":           "Agents fetched successfully",
		"complaintCategory": complaint.Category,
		"data":              agents,
	})
}

// AssignComplaint binds an agent to an unassigned complaint. The write is
// conditional on assignedTo still being null, so two concurrent assignments
// cannot both win; the loser sees the already-assigned conflict.
func AssignComplaint(c *gin.Context) {
	ticketID := c.Param("ticketId")

	var input struct {
		AgentID string `json:"agentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	complaintCollection := config.GetCollection("complaints")
	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := complaintCollection.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&complaint); err != nil {
		respondLookupError(c, err, "Complaint not found")
		return
	}

	agentObjID, err := primitive.ObjectIDFromHex(input.AgentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid agent ID"})
		return
	}

	var agent models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": agentObjID}).Decode(&agent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid agent ID"})
			return
		}
		log.Println("Error fetching agent:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := complaint.Assign(&agent); err != nil {
		switch {
		case errors.Is(err, models.ErrAssignedToSameAgent):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Complaint already assigned to this agent"})
		case errors.Is(err, models.ErrAlreadyAssigned):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Complaint already assigned to another agent"})
		case errors.Is(err, models.ErrNotAnAgent):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid agent ID"})
		case errors.Is(err, models.ErrCategoryMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Agent not in the same department"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		}
		return
	}

	// Conditional write: the filter re-checks assignedTo so a concurrent
	// assignment cannot be overwritten.
	result, err := complaintCollection.UpdateOne(
		ctx,
		bson.M{"ticketId": ticketID, "assignedTo": nil},
		bson.M{"$set": bson.M{"assignedTo": agentObjID, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("Error assigning complaint:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.ModifiedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Complaint already assigned to another agent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint assigned successfully", "data": complaint})
}
