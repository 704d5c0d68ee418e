package model

import "time"

// Consultation records a doctor's visit outcome for a patient.
// DoctorID is stamped from the authenticated caller at creation.
type Consultation struct {
	ID           string    `json:"id" firestore:"-"`
	PatientID    string    `json:"patient_id" firestore:"patient_id"`
	DoctorID     string    `json:"doctor_id" firestore:"doctor_id"`
	Diagnosis    string    `json:"diagnosis" firestore:"diagnosis"`
	Prescription string    `json:"prescription" firestore:"prescription"`
	Notes        *string   `json:"notes" firestore:"notes"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updated_at,serverTimestamp"`
}

type CreateConsultationRequest struct {
	PatientID    string  `json:"patient_id" binding:"required"`
	Diagnosis    string  `json:"diagnosis" binding:"required"`
	Prescription string  `json:"prescription" binding:"required"`
	Notes        *string `json:"notes"`
}
