package models

import "errors"

// Lifecycle guard failures. Controllers map these onto HTTP status codes:
// ownership and binding violations become 403, everything else 400.
var (
	ErrAlreadyAssigned     = errors.New("complaint already assigned to another agent")
	ErrAssignedToSameAgent = errors.New("complaint already assigned to this agent")
	ErrNotAssignable       = errors.New("only open or re-opened complaints can be assigned")
	ErrNotAnAgent          = errors.New("assignee is not an agent")
	ErrCategoryMismatch    = errors.New("agent not in the same department")

	ErrUnassigned    = errors.New("complaint is not assigned to any agent")
	ErrNotBoundAgent = errors.New("complaint is not assigned to this agent")
	ErrNotStartable  = errors.New("only open or re-opened complaints can be set to in progress")

	ErrNotInProgress   = errors.New("only in-progress complaints can be resolved")
	ErrEmptyResolution = errors.New("resolution message is required")

	ErrNotComplaintOwner = errors.New("complaint does not belong to this user")
	ErrNotReviewable     = errors.New("only resolved complaints can be reviewed")

	ErrEmptyMessage = errors.New("message cannot be empty")
)
