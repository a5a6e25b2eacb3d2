package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestAgent(category Category) *User {
	return &User{
		ID:       primitive.NewObjectID(),
		Name:     "Agent",
		Email:    "agent@example.com",
		Role:     RoleAgent,
		Category: &category,
	}
}

func newTestComplaint(category Category) *Complaint {
	return &Complaint{
		ID:          primitive.NewObjectID(),
		TicketID:    "ticket-1",
		Category:    category,
		Description: "Pipe leak on Main St, 10:00am",
		UserID:      primitive.NewObjectID(),
		Status:      StatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestAssign(t *testing.T) {
	t.Run("binds a matching agent", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)

		err := complaint.Assign(agent)

		require.NoError(t, err)
		require.NotNil(t, complaint.AssignedTo)
		assert.Equal(t, agent.ID, *complaint.AssignedTo)
	})

	t.Run("rejects an agent from another department", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Road)

		err := complaint.Assign(agent)

		assert.ErrorIs(t, err, ErrCategoryMismatch)
		assert.Nil(t, complaint.AssignedTo)
	})

	t.Run("rejects a non-agent account", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		filer := &User{ID: primitive.NewObjectID(), Role: RoleUser}

		err := complaint.Assign(filer)

		assert.ErrorIs(t, err, ErrNotAnAgent)
	})

	t.Run("rejects an agent without a category", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := &User{ID: primitive.NewObjectID(), Role: RoleAgent}

		err := complaint.Assign(agent)

		assert.ErrorIs(t, err, ErrCategoryMismatch)
	})

	t.Run("re-assignment to the same agent has a distinct error", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))

		err := complaint.Assign(agent)

		assert.ErrorIs(t, err, ErrAssignedToSameAgent)
	})

	t.Run("re-assignment to a different agent is a conflict", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agentA := newTestAgent(Water)
		agentB := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agentA))

		err := complaint.Assign(agentB)

		assert.ErrorIs(t, err, ErrAlreadyAssigned)
		assert.Equal(t, agentA.ID, *complaint.AssignedTo)
	})

	t.Run("only open or re-opened complaints are assignable", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		complaint.Status = StatusCompleted
		agent := newTestAgent(Water)

		err := complaint.Assign(agent)

		assert.ErrorIs(t, err, ErrNotAssignable)
	})

	t.Run("re-opened complaint without a binding is assignable", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		complaint.Status = StatusReopened
		agent := newTestAgent(Water)

		err := complaint.Assign(agent)

		require.NoError(t, err)
		assert.Equal(t, agent.ID, *complaint.AssignedTo)
	})
}

func TestStartProgress(t *testing.T) {
	t.Run("unassigned complaint cannot start", func(t *testing.T) {
		complaint := newTestComplaint(Water)

		err := complaint.StartProgress(primitive.NewObjectID())

		assert.ErrorIs(t, err, ErrUnassigned)
		assert.Equal(t, StatusOpen, complaint.Status)
	})

	t.Run("only the bound agent may start", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))

		err := complaint.StartProgress(primitive.NewObjectID())

		assert.ErrorIs(t, err, ErrNotBoundAgent)
		assert.Equal(t, StatusOpen, complaint.Status)
	})

	t.Run("bound agent moves open complaint to in progress", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))

		err := complaint.StartProgress(agent.ID)

		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, complaint.Status)
	})

	t.Run("bound agent resumes a re-opened complaint", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))
		complaint.Status = StatusReopened

		err := complaint.StartProgress(agent.ID)

		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, complaint.Status)
	})

	t.Run("resolved complaint cannot be started again", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))
		complaint.Status = StatusResolved

		err := complaint.StartProgress(agent.ID)

		assert.ErrorIs(t, err, ErrNotStartable)
	})
}

func TestResolve(t *testing.T) {
	t.Run("requires in progress status", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))

		err := complaint.Resolve(agent.ID, "Pipe replaced")

		assert.ErrorIs(t, err, ErrNotInProgress)
		assert.Equal(t, StatusOpen, complaint.Status)
	})

	t.Run("requires a non-empty resolution message", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))
		require.NoError(t, complaint.StartProgress(agent.ID))

		err := complaint.Resolve(agent.ID, "   ")

		assert.ErrorIs(t, err, ErrEmptyResolution)
		assert.Equal(t, StatusInProgress, complaint.Status)
		assert.Nil(t, complaint.ResolvedAt)
	})

	t.Run("only the bound agent may resolve", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))
		require.NoError(t, complaint.StartProgress(agent.ID))

		err := complaint.Resolve(primitive.NewObjectID(), "Pipe replaced")

		assert.ErrorIs(t, err, ErrNotBoundAgent)
		assert.Equal(t, StatusInProgress, complaint.Status)
	})

	t.Run("sets resolution message and timestamp", func(t *testing.T) {
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))
		require.NoError(t, complaint.StartProgress(agent.ID))

		err := complaint.Resolve(agent.ID, "Pipe replaced")

		require.NoError(t, err)
		assert.Equal(t, StatusResolved, complaint.Status)
		assert.Equal(t, "Pipe replaced", complaint.ResolutionMessage)
		require.NotNil(t, complaint.ResolvedAt)
	})
}

func TestApplyReview(t *testing.T) {
	resolved := func(t *testing.T) (*Complaint, *User) {
		t.Helper()
		complaint := newTestComplaint(Water)
		agent := newTestAgent(Water)
		require.NoError(t, complaint.Assign(agent))
		require.NoError(t, complaint.StartProgress(agent.ID))
		require.NoError(t, complaint.Resolve(agent.ID, "Pipe replaced"))
		return complaint, agent
	}

	t.Run("only the owning filer may review", func(t *testing.T) {
		complaint, _ := resolved(t)

		err := complaint.ApplyReview(primitive.NewObjectID(), Satisfied)

		assert.ErrorIs(t, err, ErrNotComplaintOwner)
		assert.Equal(t, StatusResolved, complaint.Status)
	})

	t.Run("only resolved complaints can be reviewed", func(t *testing.T) {
		complaint := newTestComplaint(Water)

		err := complaint.ApplyReview(complaint.UserID, Satisfied)

		assert.ErrorIs(t, err, ErrNotReviewable)
	})

	t.Run("satisfied completes the complaint", func(t *testing.T) {
		complaint, _ := resolved(t)

		err := complaint.ApplyReview(complaint.UserID, Satisfied)

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, complaint.Status)
		assert.Nil(t, complaint.ReopenedAt)
	})

	t.Run("not satisfied re-opens and keeps the binding", func(t *testing.T) {
		complaint, agent := resolved(t)

		err := complaint.ApplyReview(complaint.UserID, NotSatisfied)

		require.NoError(t, err)
		assert.Equal(t, StatusReopened, complaint.Status)
		require.NotNil(t, complaint.ReopenedAt)
		require.NotNil(t, complaint.AssignedTo)
		assert.Equal(t, agent.ID, *complaint.AssignedTo)
	})
}

func TestCompletedIsTerminal(t *testing.T) {
	complaint := newTestComplaint(Water)
	agent := newTestAgent(Water)
	require.NoError(t, complaint.Assign(agent))
	require.NoError(t, complaint.StartProgress(agent.ID))
	require.NoError(t, complaint.Resolve(agent.ID, "Pipe replaced"))
	require.NoError(t, complaint.ApplyReview(complaint.UserID, Satisfied))
	require.Equal(t, StatusCompleted, complaint.Status)

	assert.ErrorIs(t, complaint.StartProgress(agent.ID), ErrNotStartable)
	assert.ErrorIs(t, complaint.Resolve(agent.ID, "again"), ErrNotInProgress)
	assert.ErrorIs(t, complaint.ApplyReview(complaint.UserID, NotSatisfied), ErrNotReviewable)
	assert.ErrorIs(t, complaint.Assign(newTestAgent(Water)), ErrAlreadyAssigned)
	assert.Equal(t, StatusCompleted, complaint.Status)
}

func TestReopenCycle(t *testing.T) {
	// Full path from the filing through a negative review and a second,
	// accepted resolution.
	complaint := newTestComplaint(Water)
	agentA := newTestAgent(Water)
	agentB := newTestAgent(Water)

	require.NoError(t, complaint.Assign(agentA))
	assert.ErrorIs(t, complaint.Assign(agentB), ErrAlreadyAssigned)

	require.NoError(t, complaint.StartProgress(agentA.ID))
	assert.ErrorIs(t, complaint.Resolve(agentA.ID, ""), ErrEmptyResolution)
	require.NoError(t, complaint.Resolve(agentA.ID, "Pipe replaced"))

	require.NoError(t, complaint.ApplyReview(complaint.UserID, NotSatisfied))
	assert.Equal(t, StatusReopened, complaint.Status)

	// The binding survives the reopen: no fresh assignment, the same agent
	// re-acknowledges and works the ticket again.
	assert.ErrorIs(t, complaint.Assign(agentB), ErrAlreadyAssigned)
	require.NoError(t, complaint.StartProgress(agentA.ID))
	require.NoError(t, complaint.Resolve(agentA.ID, "Joint resealed"))
	require.NoError(t, complaint.ApplyReview(complaint.UserID, Satisfied))
	assert.Equal(t, StatusCompleted, complaint.Status)
}

func TestAppendMessage(t *testing.T) {
	t.Run("rejects whitespace-only text", func(t *testing.T) {
		complaint := newTestComplaint(Water)

		msg, err := complaint.AppendMessage(RoleUser, "  \t ")

		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Nil(t, msg)
		assert.Empty(t, complaint.Messages)
	})

	t.Run("derives the sender from the caller role", func(t *testing.T) {
		complaint := newTestComplaint(Water)

		userMsg, err := complaint.AppendMessage(RoleUser, "Any update?")
		require.NoError(t, err)
		agentMsg, err := complaint.AppendMessage(RoleAgent, "On it.")
		require.NoError(t, err)

		assert.Equal(t, RoleUser, userMsg.Sender)
		assert.Equal(t, RoleAgent, agentMsg.Sender)
	})

	t.Run("appends in arrival order", func(t *testing.T) {
		complaint := newTestComplaint(Water)

		for _, text := range []string{"first", "second", "third"} {
			_, err := complaint.AppendMessage(RoleUser, text)
			require.NoError(t, err)
		}

		require.Len(t, complaint.Messages, 3)
		assert.Equal(t, "first", complaint.Messages[0].Message)
		assert.Equal(t, "second", complaint.Messages[1].Message)
		assert.Equal(t, "third", complaint.Messages[2].Message)
	})
}

func TestIsParticipant(t *testing.T) {
	complaint := newTestComplaint(Water)
	agent := newTestAgent(Water)
	require.NoError(t, complaint.Assign(agent))

	assert.True(t, complaint.IsParticipant(complaint.UserID, RoleUser))
	assert.True(t, complaint.IsParticipant(agent.ID, RoleAgent))

	assert.False(t, complaint.IsParticipant(primitive.NewObjectID(), RoleUser))
	assert.False(t, complaint.IsParticipant(primitive.NewObjectID(), RoleAgent))
	assert.False(t, complaint.IsParticipant(complaint.UserID, RoleAdmin))

	unassigned := newTestComplaint(Water)
	assert.False(t, unassigned.IsParticipant(agent.ID, RoleAgent))
}
