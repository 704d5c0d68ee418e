package model

import "time"

// Priority of a patient in the triage queue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Patient is a triage record. UserID is the owning user and is
// immutable after creation; it scopes what non-doctor callers may read.
type Patient struct {
	ID            string    `json:"id" firestore:"-"`
	UserID        string    `json:"user_id" firestore:"user_id"`
	Name          string    `json:"name" firestore:"name"`
	Age           int       `json:"age" firestore:"age"`
	Gender        string    `json:"gender" firestore:"gender"`
	BloodPressure *string   `json:"blood_pressure" firestore:"blood_pressure"`
	HeartRate     *float64  `json:"heart_rate" firestore:"heart_rate"`
	Temperature   *float64  `json:"temperature" firestore:"temperature"`
	Priority      Priority  `json:"priority" firestore:"priority"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updated_at,serverTimestamp"`
}

type CreatePatientRequest struct {
	Name          string   `json:"name" binding:"required"`
	Age           int      `json:"age" binding:"gte=0,lte=150"`
	Gender        string   `json:"gender" binding:"required"`
	BloodPressure *string  `json:"blood_pressure"`
	HeartRate     *float64 `json:"heart_rate"`
	Temperature   *float64 `json:"temperature"`
	Priority      Priority `json:"priority" binding:"omitempty,oneof=low medium high"`
}
