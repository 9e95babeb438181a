package entity

import (
	"math"
	"time"
)

const (
	ReviewTypeProperty = "property"
	ReviewTypeAgent    = "agent"
	ReviewTypeSeller   = "seller"
)

type Review struct {
	ID         string    `json:"id" firestore:"id"`
	PropertyID string    `json:"property" firestore:"property"`
	ReviewerID string    `json:"reviewer" firestore:"reviewer"`
	Rating     int       `json:"rating" firestore:"rating"` // 1-5
	Comment    string    `json:"comment" firestore:"comment"`
	ReviewType string    `json:"reviewType" firestore:"reviewType"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}

type ReviewWithReviewer struct {
	*Review
	ReviewerInfo *UserSummary `json:"reviewerInfo,omitempty"`
}

// AverageRating is the arithmetic mean of the ratings rounded to one
// decimal place, or 0 for no reviews.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
