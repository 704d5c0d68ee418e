package model

import "time"

// Message is a note on a patient's thread. SenderID is stamped from
// the authenticated caller. Messages carry no updated_at: they are
// append-only.
type Message struct {
	ID        string    `json:"id" firestore:"-"`
	PatientID string    `json:"patient_id" firestore:"patient_id"`
	SenderID  string    `json:"sender_id" firestore:"sender_id"`
	Content   string    `json:"content" firestore:"content"`
	IsUrgent  bool      `json:"is_urgent" firestore:"is_urgent"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
}

type CreateMessageRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	IsUrgent  bool   `json:"is_urgent"`
}
