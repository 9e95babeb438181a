package firebase

import (
	"context"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/adapter/repository/memory"
	"realestate/internal/domain/entity"
)

type stubVerifier map[string]*auth.Token

func (s stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if t, ok := s[idToken]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("id token has invalid signature")
}

func TestVerifyTokenResolvesUsersByEmail(t *testing.T) {
	users := memory.NewUserRepository(memory.NewStore())
	known := &entity.User{Email: "known@example.com"}
	require.NoError(t, users.Create(context.Background(), known))

	client := &FirebaseAuthClient{
		client: stubVerifier{
			"known":   {UID: "fb-1", Claims: map[string]interface{}{"email": "known@example.com"}},
			"new":     {UID: "fb-2", Claims: map[string]interface{}{"email": "new@example.com"}},
			"noemail": {UID: "fb-3", Claims: map[string]interface{}{}},
		},
		userRepo: users,
	}

	uid, err := client.VerifyToken(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, known.ID, uid)

	uid, err = client.VerifyToken(context.Background(), "new")
	require.NoError(t, err)
	assert.Equal(t, "fb-2", uid)

	uid, err = client.VerifyToken(context.Background(), "noemail")
	require.NoError(t, err)
	assert.Equal(t, "fb-3", uid)

	_, err = client.VerifyToken(context.Background(), "forged")
	assert.Error(t, err)
}

func TestClientOption(t *testing.T) {
	assert.Len(t, ClientOption(`{"type":"service_account"}`, "ignored.json"), 1)
	assert.Len(t, ClientOption("", "sa.json"), 1)
	assert.Empty(t, ClientOption("", ""))
}
