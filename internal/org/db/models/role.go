package models

import (
	"github.com/google/uuid"
)

// Role is the roles table, linked to permissions through role_permissions.
type Role struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name        string       `gorm:"size:50;not null;uniqueIndex:uq_roles_name"`
	DisplayName string       `gorm:"size:100"`
	Level       int          `gorm:"not null"`
	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

// Permission is the permissions table.
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_permissions_name"`
	DisplayName string    `gorm:"size:200"`
	Resource    string    `gorm:"size:50"`
	Action      string    `gorm:"size:50"`
}
