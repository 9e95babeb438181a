package firebase

import (
	"context"
	"fmt"

	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
)

// ClientOption picks the service account credentials: inline JSON first,
// then a file path. With neither, application default credentials apply.
func ClientOption(serviceAccountJSON, serviceAccountPath string) []option.ClientOption {
	switch {
	case serviceAccountJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(serviceAccountJSON))}
	case serviceAccountPath != "":
		return []option.ClientOption{option.WithCredentialsFile(serviceAccountPath)}
	default:
		return nil
	}
}

func NewApp(ctx context.Context, projectID string, opts ...option.ClientOption) (*fbapp.App, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuthClient accepts Firebase ID tokens and maps them onto users of
// this API by email, falling back to the Firebase UID.
type FirebaseAuthClient struct {
	client   idTokenVerifier
	userRepo repository.UserRepository
}

func NewFirebaseAuthClient(client *auth.Client, userRepo repository.UserRepository) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:   client,
		userRepo: userRepo,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	email, _ := result.Claims["email"].(string)
	if email == "" {
		return result.UID, nil
	}

	user, err := f.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return user.ID, nil
	case errors.IsNotFound(err):
		return result.UID, nil
	default:
		return "", err
	}
}
