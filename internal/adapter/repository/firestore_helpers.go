package repository

import (
	"context"

	"cloud.google.com/go/firestore"
)

const (
	usersCollection      = "users"
	propertiesCollection = "properties"
	favoritesCollection  = "favorites"
	reviewsCollection    = "reviews"

	// firestoreBatchSize caps the document refs sent in one GetAll call.
	firestoreBatchSize = 30
)

// getAllExisting fetches documents by ID in batches and drops the missing ones.
func getAllExisting(ctx context.Context, client *firestore.Client, collection string, ids []string) ([]*firestore.DocumentSnapshot, error) {
	var snapshots []*firestore.DocumentSnapshot

	for i := 0; i < len(ids); i += firestoreBatchSize {
		end := min(i+firestoreBatchSize, len(ids))

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range ids[i:end] {
			if id != "" {
				refs = append(refs, client.Collection(collection).Doc(id))
			}
		}
		if len(refs) == 0 {
			continue
		}

		docs, err := client.GetAll(ctx, refs)
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			if doc != nil && doc.Exists() {
				snapshots = append(snapshots, doc)
			}
		}
	}

	return snapshots, nil
}
