package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/teleclinic/telemed-api/internal/model"
)

type LabTestRepository struct {
	client *firestore.Client
}

func NewLabTestRepository(client *firestore.Client) *LabTestRepository {
	return &LabTestRepository{client: client}
}

func (r *LabTestRepository) Create(ctx context.Context, labTest *model.LabTest) (string, error) {
	ref, _, err := r.client.Collection(labTestsCollection).Add(ctx, labTest)
	if err != nil {
		return "", fmt.Errorf("failed to create lab test: %w", err)
	}
	return ref.ID, nil
}

func (r *LabTestRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.LabTest, error) {
	iter := r.client.Collection(labTestsCollection).
		Where("patient_id", "==", patientID).
		Documents(ctx)
	defer iter.Stop()

	labTests := make([]*model.LabTest, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list lab tests: %w", err)
		}

		var labTest model.LabTest
		if err := snap.DataTo(&labTest); err != nil {
			return nil, fmt.Errorf("failed to decode lab test %s: %w", snap.Ref.ID, err)
		}
		labTest.ID = snap.Ref.ID
		labTests = append(labTests, &labTest)
	}
	return labTests, nil
}
