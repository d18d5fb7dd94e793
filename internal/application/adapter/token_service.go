// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims holds the verified identity carried by an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer access tokens.
type TokenService interface {
	// IssueAccessToken signs a token for subject that expires after ttl.
	IssueAccessToken(subject string, ttl time.Duration) (string, error)

	// ValidateAccessToken verifies the token signature and expiry.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
