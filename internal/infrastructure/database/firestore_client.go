package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// ConnectFirestore opens a Firestore client with Application Default
// Credentials. FIRESTORE_EMULATOR_HOST is honoured by the client library.
func ConnectFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}
