package usecase

import (
	"context"
	"strings"
	"time"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo   repository.ReviewRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	activity     ActivityRecorder
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	activity ActivityRecorder,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		activity:     recorderOrNoop(activity),
	}
}

type CreateReviewInput struct {
	PropertyID string
	Rating     int
	Comment    string
	ReviewType string
}

type PropertyReviews struct {
	Reviews       []*entity.ReviewWithReviewer `json:"reviews"`
	AverageRating float64                      `json:"averageRating"`
	TotalReviews  int                          `json:"totalReviews"`
}

func (uc *ReviewUseCase) ListPropertyReviews(ctx context.Context, propertyID string) (*PropertyReviews, error) {
	reviews, err := uc.reviewRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reviews))
	seen := make(map[string]bool)
	for _, r := range reviews {
		if !seen[r.ReviewerID] {
			seen[r.ReviewerID] = true
			ids = append(ids, r.ReviewerID)
		}
	}

	reviewers, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.ReviewWithReviewer, len(reviews))
	for i, r := range reviews {
		result[i] = &entity.ReviewWithReviewer{Review: r}
		if reviewer, ok := reviewers[r.ReviewerID]; ok {
			result[i].ReviewerInfo = reviewer.ReviewerSummary()
		}
	}

	return &PropertyReviews{
		Reviews:       result,
		AverageRating: entity.AverageRating(reviews),
		TotalReviews:  len(reviews),
	}, nil
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, errors.BadRequest("Comment is required", nil)
	}

	reviewType := input.ReviewType
	switch reviewType {
	case "":
		reviewType = entity.ReviewTypeProperty
	case entity.ReviewTypeProperty, entity.ReviewTypeAgent, entity.ReviewTypeSeller:
	default:
		return nil, errors.BadRequest("Invalid review type", nil)
	}

	if _, err := uc.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		PropertyID: input.PropertyID,
		ReviewerID: reviewerID,
		Rating:     input.Rating,
		Comment:    comment,
		ReviewType: reviewType,
		CreatedAt:  time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.activity.ReviewCreated(reviewType)
	return review, nil
}

// DeleteReview removes a review. Only its author may delete it.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id, callerID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.ReviewerID != callerID {
		return errors.Forbidden("You can only delete your own reviews", nil)
	}

	return uc.reviewRepo.Delete(ctx, id)
}
