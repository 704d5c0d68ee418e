package model

import "time"

// LabTest is a test result attached to a patient.
type LabTest struct {
	ID        string    `json:"id" firestore:"-"`
	PatientID string    `json:"patient_id" firestore:"patient_id"`
	TestName  string    `json:"test_name" firestore:"test_name"`
	Result    string    `json:"result" firestore:"result"`
	Notes     *string   `json:"notes" firestore:"notes"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at,serverTimestamp"`
}

type CreateLabTestRequest struct {
	PatientID string  `json:"patient_id" binding:"required"`
	TestName  string  `json:"test_name" binding:"required"`
	Result    string  `json:"result" binding:"required"`
	Notes     *string `json:"notes"`
}
