package firebase

import (
	"context"
	"errors"
	"strings"

	"med-reminder-api/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier contra Firebase (Identity Toolkit).
// Se instancia desde main cuando FIREBASE_WEB_API_KEY está seteada; si no,
// el middleware queda en modo dev.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrFirebaseNotConfigured
	}

	localID, email, err := v.client.LookupAccount(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}

	localID = strings.TrimSpace(localID)
	if localID == "" {
		return auth.Claims{}, errors.New("firebase account missing local id")
	}

	return auth.Claims{
		UserID: localID,
		Email:  strings.TrimSpace(email),
	}, nil
}
