// Package firestore implements the repository interfaces on Cloud
// Firestore. Records are schema-less documents in named collections;
// ids are either the identity uid (users) or auto-generated (all
// other collections).
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	firebase "firebase.google.com/go/v4"
)

// Collection names.
const (
	usersCollection         = "users"
	patientsCollection      = "patients"
	consultationsCollection = "consultations"
	labTestsCollection      = "lab_tests"
	messagesCollection      = "messages"
)

// NewClient builds the Firestore client from the shared Admin SDK app.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}
