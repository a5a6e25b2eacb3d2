package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewResult enum
type ReviewResult string

const (
	Satisfied    ReviewResult = "Satisfied"
	NotSatisfied ReviewResult = "Not Satisfied"
)

// Review is the filer's verdict on a resolved complaint. A ticket can carry
// several reviews when it loops through re-open cycles, so ticketId is not
// unique here.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TicketID  string             `bson:"ticketId" json:"ticketId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	Result    ReviewResult       `bson:"result" json:"result"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
