package entity

import (
	"time"
)

const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeAgent  = "agent"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	FirstName    string `json:"firstName" firestore:"firstName"`
	LastName     string `json:"lastName" firestore:"lastName"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Phone        string `json:"phone,omitempty" firestore:"phone"`
	UserType     string `json:"userType" firestore:"userType"`

	Company      string `json:"company,omitempty" firestore:"company"`
	Bio          string `json:"bio,omitempty" firestore:"bio"`
	Location     string `json:"location,omitempty" firestore:"location"`
	ProfileImage string `json:"profileImage,omitempty" firestore:"profileImage"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// UserSummary is the public slice of a user embedded in other documents.
type UserSummary struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Company      string `json:"company,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

// SellerSummary is what a property listing exposes about its seller.
func (u *User) SellerSummary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		Company:      u.Company,
		Bio:          u.Bio,
	}
}

// ReviewerSummary is what a review exposes about its author.
func (u *User) ReviewerSummary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
	}
}
