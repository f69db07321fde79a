package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one audit entry describing a mutation performed by an actor.
type Activity struct {
	ID          uuid.UUID
	SubjectID   uuid.UUID
	Actor       string
	Action      string
	Entity      string
	Description string
	CreatedAt   time.Time
}
