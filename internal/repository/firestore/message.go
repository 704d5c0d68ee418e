package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/teleclinic/telemed-api/internal/model"
)

type MessageRepository struct {
	client *firestore.Client
}

func NewMessageRepository(client *firestore.Client) *MessageRepository {
	return &MessageRepository{client: client}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) (string, error) {
	ref, _, err := r.client.Collection(messagesCollection).Add(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	return ref.ID, nil
}

func (r *MessageRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.Message, error) {
	iter := r.client.Collection(messagesCollection).
		Where("patient_id", "==", patientID).
		Documents(ctx)
	defer iter.Stop()

	messages := make([]*model.Message, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		var message model.Message
		if err := snap.DataTo(&message); err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", snap.Ref.ID, err)
		}
		message.ID = snap.Ref.ID
		messages = append(messages, &message)
	}
	return messages, nil
}
