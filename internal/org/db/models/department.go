// Package models contains the storage rows of the organization service,
// configured to work using GORM as the ORM.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Department is the departments table. ManagerID is unique so that an
// employee heads at most one department; NULLs do not collide.
type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:100;not null;uniqueIndex:uq_departments_name"`
	Code        string     `gorm:"size:20;not null;uniqueIndex:uq_departments_code"`
	Description string     `gorm:"size:500"`
	ManagerID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_departments_manager_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
