package repository

import (
	"context"
	"errors"

	"github.com/teleclinic/telemed-api/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// All repository interfaces in one file
type (
	// UserRepository stores profiles keyed by the identity uid.
	UserRepository interface {
		Get(ctx context.Context, uid string) (*model.User, error)
		Set(ctx context.Context, uid string, user *model.User) error
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (string, error)
		Get(ctx context.Context, id string) (*model.Patient, error)
		ListAll(ctx context.Context) ([]*model.Patient, error)
		ListByOwner(ctx context.Context, userID string) ([]*model.Patient, error)
	}

	ConsultationRepository interface {
		Create(ctx context.Context, consultation *model.Consultation) (string, error)
		ListByPatient(ctx context.Context, patientID string) ([]*model.Consultation, error)
	}

	LabTestRepository interface {
		Create(ctx context.Context, labTest *model.LabTest) (string, error)
		ListByPatient(ctx context.Context, patientID string) ([]*model.LabTest, error)
	}

	MessageRepository interface {
		Create(ctx context.Context, message *model.Message) (string, error)
		ListByPatient(ctx context.Context, patientID string) ([]*model.Message, error)
	}
)
