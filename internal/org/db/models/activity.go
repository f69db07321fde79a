package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only audit row written for every mutation.
type ActivityLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index"`
	Actor       string    `gorm:"size:100"`
	Action      string    `gorm:"size:50;not null"`
	Entity      string    `gorm:"size:50;not null"`
	Description string    `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"index"`
}
