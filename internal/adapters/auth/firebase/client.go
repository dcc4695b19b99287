package firebase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"med-reminder-api/internal/platform/httpclient"
)

var (
	ErrFirebaseNotConfigured = errors.New("firebase client not configured")
	ErrFirebaseUnauthorized  = errors.New("firebase unauthorized")
	ErrFirebaseUpstream      = errors.New("firebase upstream error")
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com"

// Config del cliente de Identity Toolkit.
// APIKey normalmente viene de FIREBASE_WEB_API_KEY en el servicio que lo instancia.
type Config struct {
	// BaseURL opcional; por defecto el endpoint público de Google.
	// En tests se apunta a un httptest.Server.
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// LookupAccount verifica un ID token contra accounts:lookup y devuelve
// los datos de la cuenta. Un token inválido/expirado es un 400 del
// upstream, que normalizamos a ErrFirebaseUnauthorized.
func (c *Client) LookupAccount(ctx context.Context, idToken string) (localID, email string, err error) {
	if !c.IsConfigured() {
		return "", "", ErrFirebaseNotConfigured
	}
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return "", "", ErrFirebaseUnauthorized
	}

	var out struct {
		Users []struct {
			LocalID string `json:"localId"`
			Email   string `json:"email"`
		} `json:"users"`
	}

	path := "/v1/accounts:lookup?key=" + c.apiKey
	err = c.http.DoJSON(ctx, http.MethodPost, path, nil, map[string]string{"idToken": idToken}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			if he.StatusCode == http.StatusBadRequest || he.StatusCode == http.StatusUnauthorized {
				return "", "", ErrFirebaseUnauthorized
			}
			return "", "", fmt.Errorf("%w: status=%d", ErrFirebaseUpstream, he.StatusCode)
		}
		return "", "", fmt.Errorf("%w: %v", ErrFirebaseUpstream, err)
	}

	if len(out.Users) == 0 {
		return "", "", ErrFirebaseUnauthorized
	}
	return out.Users[0].LocalID, out.Users[0].Email, nil
}
