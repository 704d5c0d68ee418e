package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
)

type PatientRepository struct {
	client *firestore.Client
}

func NewPatientRepository(client *firestore.Client) *PatientRepository {
	return &PatientRepository{client: client}
}

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) (string, error) {
	ref, _, err := r.client.Collection(patientsCollection).Add(ctx, patient)
	if err != nil {
		return "", fmt.Errorf("failed to create patient: %w", err)
	}
	return ref.ID, nil
}

func (r *PatientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	snap, err := r.client.Collection(patientsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient %s: %w", id, err)
	}

	var patient model.Patient
	if err := snap.DataTo(&patient); err != nil {
		return nil, fmt.Errorf("failed to decode patient %s: %w", id, err)
	}
	patient.ID = snap.Ref.ID
	return &patient, nil
}

func (r *PatientRepository) ListAll(ctx context.Context) ([]*model.Patient, error) {
	return r.list(r.client.Collection(patientsCollection).Documents(ctx))
}

func (r *PatientRepository) ListByOwner(ctx context.Context, userID string) ([]*model.Patient, error) {
	iter := r.client.Collection(patientsCollection).
		Where("user_id", "==", userID).
		Documents(ctx)
	return r.list(iter)
}

func (r *PatientRepository) list(iter *firestore.DocumentIterator) ([]*model.Patient, error) {
	defer iter.Stop()

	patients := make([]*model.Patient, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list patients: %w", err)
		}

		var patient model.Patient
		if err := snap.DataTo(&patient); err != nil {
			return nil, fmt.Errorf("failed to decode patient %s: %w", snap.Ref.ID, err)
		}
		patient.ID = snap.Ref.ID
		patients = append(patients, &patient)
	}
	return patients, nil
}
