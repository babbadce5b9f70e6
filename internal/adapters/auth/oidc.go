package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds OIDC provider configuration
type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Identity is the caller described by a verified ID token
type Identity struct {
	Subject string
	Email   string
}

// Token is returned to the caller after a successful login
type Token struct {
	IDToken   string    `json:"id_token"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Provider is the identity provider used by the handlers and middleware
type Provider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*Token, error)
	Verify(ctx context.Context, rawIDToken string) (*Identity, error)
}

// Authenticator handles OIDC authentication
type Authenticator struct {
	provider *oidc.Provider
	config   oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewAuthenticator creates a new OIDC authenticator
func NewAuthenticator(ctx context.Context, cfg OIDCConfig) (*Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "email"},
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})

	return &Authenticator{
		provider: provider,
		config:   oauth2Config,
		verifier: verifier,
	}, nil
}

// AuthURL generates the authorization URL for login
func (a *Authenticator) AuthURL(state string) string {
	return a.config.AuthCodeURL(state)
}

// Exchange exchanges the authorization code for tokens and returns the verified ID token
func (a *Authenticator) Exchange(ctx context.Context, code string) (*Token, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("no id_token in token response")
	}

	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity, err := identityFromToken(idToken)
	if err != nil {
		return nil, err
	}

	return &Token{
		IDToken:   rawIDToken,
		Email:     identity.Email,
		ExpiresAt: idToken.Expiry,
	}, nil
}

// Verify checks a raw ID token presented as a bearer token
func (a *Authenticator) Verify(ctx context.Context, rawIDToken string) (*Identity, error) {
	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}
	return identityFromToken(idToken)
}

func identityFromToken(idToken *oidc.IDToken) (*Identity, error) {
	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}

	return &Identity{
		Subject: idToken.Subject,
		Email:   claims.Email,
	}, nil
}
