package usecase

import (
	"context"
	"time"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// UpdateProfileInput lists the profile fields a user may change. Nil means unchanged.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	Company      *string
	Bio          *string
	Location     *string
	ProfileImage *string
}

func (uc *UserUseCase) GetUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, callerID, userID string, input UpdateProfileInput) (*entity.User, error) {
	if callerID != userID {
		return nil, errors.Forbidden("You can only update your own profile", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assign(&user.FirstName, input.FirstName)
	assign(&user.LastName, input.LastName)
	assign(&user.Phone, input.Phone)
	assign(&user.Company, input.Company)
	assign(&user.Bio, input.Bio)
	assign(&user.Location, input.Location)
	assign(&user.ProfileImage, input.ProfileImage)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
