package models

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Status enum
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusCompleted  Status = "Completed"
	StatusReopened   Status = "Re-opened"
)

// ThreadMessage is one entry of the complaint's embedded chat thread.
// The thread is append-only; messages are never edited or removed.
type ThreadMessage struct {
	Sender    Role      `bson:"sender" json:"sender"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Complaint is the central document. TicketID is the only identifier clients
// ever see; the Mongo _id stays internal.
type Complaint struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TicketID          string              `bson:"ticketId" json:"ticketId"`
	Category          Category            `bson:"category" json:"category"`
	Description       string              `bson:"desc" json:"desc"`
	ImageURL          *string             `bson:"img,omitempty" json:"img,omitempty"`
	UserID            primitive.ObjectID  `bson:"userId" json:"userId"`
	AssignedTo        *primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	Status            Status              `bson:"status" json:"status"`
	ResolutionMessage string              `bson:"resolutionMessage" json:"resolutionMessage"`
	ResolvedAt        *time.Time          `bson:"resolvedAt" json:"resolvedAt"`
	ReopenedAt        *time.Time          `bson:"reopenedAt" json:"reopenedAt"`
	Messages          []ThreadMessage     `bson:"messages" json:"messages"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Assign binds an agent to the complaint. A complaint is assignable only
// while Open or Re-opened with no agent bound, and only to an agent of the
// complaint's own category. Re-assignment is rejected with a distinct error
// when the target is the agent already bound.
func (cm *Complaint) Assign(agent *User) error {
	if cm.AssignedTo != nil {
		if agent != nil && *cm.AssignedTo == agent.ID {
			return ErrAssignedToSameAgent
		}
		return ErrAlreadyAssigned
	}
	if cm.Status != StatusOpen && cm.Status != StatusReopened {
		return ErrNotAssignable
	}
	if agent == nil || agent.Role != RoleAgent {
		return ErrNotAnAgent
	}
	if agent.Category == nil || *agent.Category != cm.Category {
		return ErrCategoryMismatch
	}
	cm.AssignedTo = &agent.ID
	return nil
}

// StartProgress moves an Open or Re-opened complaint to In Progress. Only
// the bound agent may do this; a Re-opened complaint keeps its binding, so
// the same agent re-acknowledges before resuming.
func (cm *Complaint) StartProgress(agentID primitive.ObjectID) error {
	if cm.AssignedTo == nil {
		return ErrUnassigned
	}
	if *cm.AssignedTo != agentID {
		return ErrNotBoundAgent
	}
	if cm.Status != StatusOpen && cm.Status != StatusReopened {
		return ErrNotStartable
	}
	cm.Status = StatusInProgress
	return nil
}

// Resolve moves an In Progress complaint to Resolved with a mandatory
// resolution message.
func (cm *Complaint) Resolve(agentID primitive.ObjectID, resolutionMsg string) error {
	if cm.AssignedTo == nil {
		return ErrUnassigned
	}
	if *cm.AssignedTo != agentID {
		return ErrNotBoundAgent
	}
	if cm.Status != StatusInProgress {
		return ErrNotInProgress
	}
	if strings.TrimSpace(resolutionMsg) == "" {
		return ErrEmptyResolution
	}
	now := time.Now()
	cm.Status = StatusResolved
	cm.ResolutionMessage = resolutionMsg
	cm.ResolvedAt = &now
	return nil
}

// ApplyReview records the filer's verdict on a Resolved complaint: Satisfied
// closes it for good, Not Satisfied re-opens it. Completed is terminal, so a
// completed complaint can never be reviewed back into the cycle.
func (cm *Complaint) ApplyReview(userID primitive.ObjectID, result ReviewResult) error {
	if cm.UserID != userID {
		return ErrNotComplaintOwner
	}
	if cm.Status != StatusResolved {
		return ErrNotReviewable
	}
	if result == NotSatisfied {
		now := time.Now()
		cm.Status = StatusReopened
		cm.ReopenedAt = &now
	} else {
		cm.Status = StatusCompleted
	}
	return nil
}

// AppendMessage adds a chat message to the thread and returns it. The sender
// tag comes from the caller's role, never from the request body.
func (cm *Complaint) AppendMessage(role Role, text string) (*ThreadMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	sender := RoleUser
	if role == RoleAgent {
		sender = RoleAgent
	}
	msg := ThreadMessage{
		Sender:    sender,
		Message:   text,
		Timestamp: time.Now(),
	}
	cm.Messages = append(cm.Messages, msg)
	return &msg, nil
}

// IsParticipant reports whether the caller may read or post on the
// complaint's thread: the filing user or the bound agent, nobody else.
func (cm *Complaint) IsParticipant(actorID primitive.ObjectID, role Role) bool {
	switch role {
	case RoleUser:
		return cm.UserID == actorID
	case RoleAgent:
		return cm.AssignedTo != nil && *cm.AssignedTo == actorID
	default:
		return false
	}
}

// EnsureComplaintIndexes creates the unique ticketId index plus the lookup
// indexes the listing queries rely on.
func EnsureComplaintIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ticketId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
