package auth

import (
	"context"
	"errors"
	"fmt"
	"workshop-site/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Authenticator holds the OIDC provider, OAuth2 config and ID token verifier
// used for operator single sign-on.
type Authenticator struct {
	*oidc.Provider
	*oauth2.Config
	*oidc.IDTokenVerifier
}

// Claims are the ID token claims used to find the operator.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// NewAuthenticator discovers the provider at cfg.IssuerURL. It returns nil
// without error when single sign-on is not configured.
func NewAuthenticator(ctx context.Context, cfg config.OIDCConfig) (*Authenticator, error) {
	if cfg.IssuerURL == "" {
		return nil, nil
	}
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &Authenticator{
		Provider: provider,
		Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		IDTokenVerifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// Identify exchanges an authorization code and returns the verified claims.
func (a *Authenticator) Identify(ctx context.Context, code string) (*Claims, error) {
	token, err := a.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("no id_token field in oauth2 token")
	}
	idToken, err := a.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to read ID token claims: %w", err)
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, errors.New("ID token carries no verified email")
	}
	return &claims, nil
}
