package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient is the identity provider adapter. It only verifies tokens and
// resolves display names; account management lives outside this service.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken checks an ID token and returns the opaque user id plus the
// display name carried in the token claims (empty when absent).
func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, string, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}

	displayName := ""
	if name, ok := token.Claims["name"].(string); ok {
		displayName = name
	}
	return token.UID, displayName, nil
}

func (f *AuthClient) GetDisplayName(ctx context.Context, uid string) (string, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.DisplayName, nil
}
