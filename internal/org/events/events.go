// Package events publishes organization changes to Kafka and turns consumed
// events into activity log entries.
package events

import (
	"time"

	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
)

type EventType string

const (
	DepartmentCreated         EventType = "department_created"
	DepartmentUpdated         EventType = "department_updated"
	DepartmentDeleted         EventType = "department_deleted"
	DepartmentManagerAssigned EventType = "department_manager_assigned"
	EmployeesAssigned         EventType = "employees_assigned"
	EmployeesRemoved          EventType = "employees_removed"
	EmployeeCreated           EventType = "employee_created"
	EmployeeUpdated           EventType = "employee_updated"
	EmployeeTransferred       EventType = "employee_transferred"
	EmployeeManagerAssigned   EventType = "employee_manager_assigned"
	EmployeeActivated         EventType = "employee_activated"
	EmployeeDeactivated       EventType = "employee_deactivated"
)

// Entities an event can be about.
const (
	EntityDepartment = "department"
	EntityEmployee   = "employee"
)

// Event describes one committed change.
type Event struct {
	Type        EventType `json:"type"`
	Entity      string    `json:"entity"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Actor       string    `json:"actor,omitempty"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType EventType, entity string, subjectID uuid.UUID, actor, description string) Event {
	return Event{
		Type:        eventType,
		Entity:      entity,
		SubjectID:   subjectID,
		Actor:       actor,
		Description: description,
		OccurredAt:  time.Now().UTC(),
	}
}

// Activity converts the event into an activity log entry.
func (ev Event) Activity() *models.Activity {
	return &models.Activity{
		SubjectID:   ev.SubjectID,
		Actor:       ev.Actor,
		Action:      string(ev.Type),
		Entity:      ev.Entity,
		Description: ev.Description,
		CreatedAt:   ev.OccurredAt,
	}
}
