package events

import (
	"time"

	"github.com/spec-kit/training-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated     EventType = "employee_created"
	EventEmployeeUpdated     EventType = "employee_updated"
	EventEmployeeDeactivated EventType = "employee_deactivated"
	EventTraineeEnrolled     EventType = "trainee_enrolled"
	EventTraineeUpdated      EventType = "trainee_updated"
	EventTraineeDeleted      EventType = "trainee_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeePayload accompanies employee lifecycle events.
type EmployeePayload struct {
	EmployeeID string            `json:"employeeId"`
	Name       string            `json:"employeeName"`
	Department domain.Department `json:"department"`
	Active     bool              `json:"isActive"`
}

// TraineePayload accompanies enrollment lifecycle events.
type TraineePayload struct {
	TraineeID    string                  `json:"traineeId,omitempty"`
	EmployeeID   string                  `json:"employeeId"`
	EmployeeName string                  `json:"employeeName"`
	TrainingName domain.TrainingCategory `json:"trainingName"`
	Status       domain.TraineeStatus    `json:"status"`
}

// TraineeBulkDeletePayload accompanies delete-by-name events, which may
// remove several enrollment rows at once.
type TraineeBulkDeletePayload struct {
	EmployeeName string `json:"employeeName"`
	Deleted      int64  `json:"deleted"`
}
