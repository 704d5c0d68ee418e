package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/teleclinic/telemed-api/internal/model"
)

type ConsultationRepository struct {
	client *firestore.Client
}

func NewConsultationRepository(client *firestore.Client) *ConsultationRepository {
	return &ConsultationRepository{client: client}
}

func (r *ConsultationRepository) Create(ctx context.Context, consultation *model.Consultation) (string, error) {
	ref, _, err := r.client.Collection(consultationsCollection).Add(ctx, consultation)
	if err != nil {
		return "", fmt.Errorf("failed to create consultation: %w", err)
	}
	return ref.ID, nil
}

func (r *ConsultationRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.Consultation, error) {
	iter := r.client.Collection(consultationsCollection).
		Where("patient_id", "==", patientID).
		Documents(ctx)
	defer iter.Stop()

	consultations := make([]*model.Consultation, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list consultations: %w", err)
		}

		var consultation model.Consultation
		if err := snap.DataTo(&consultation); err != nil {
			return nil, fmt.Errorf("failed to decode consultation %s: %w", snap.Ref.ID, err)
		}
		consultation.ID = snap.Ref.ID
		consultations = append(consultations, &consultation)
	}
	return consultations, nil
}
