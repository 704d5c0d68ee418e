package model

import "time"

// Role controls read-scope breadth. The enumeration is closed: a
// doctor sees every record, a patient only records rooted at patients
// they own.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// User is the locally stored profile for an identity-provider account.
// The document id equals the provider's stable uid. Records are
// provisioned lazily on first authenticated call and never refreshed
// from the provider afterwards.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Role      Role      `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at,serverTimestamp"`
}

// CreateUserRequest is the public signup payload. The password never
// touches the document store; it goes to the identity provider only.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=doctor patient"`
}
