package entity

import (
	"fmt"
	"time"
)

type Favorite struct {
	ID         string    `json:"id" firestore:"id"`
	UserID     string    `json:"user" firestore:"user"`
	PropertyID string    `json:"propertyId" firestore:"property"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}

// FavoriteKey is the deterministic document ID of a (user, property) pair.
func FavoriteKey(userID, propertyID string) string {
	return fmt.Sprintf("%s_%s", userID, propertyID)
}

type FavoriteWithProperty struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user"`
	PropertyID string    `json:"propertyId"`
	Property   *Property `json:"property"`
	CreatedAt  time.Time `json:"createdAt"`
}
