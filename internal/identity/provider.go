// Package identity abstracts the managed identity provider that owns
// token issuance, verification and account credentials.
package identity

import "context"

// Profile is the provider-side view of an account.
type Profile struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider verifies bearer tokens and manages provider-side accounts.
type Provider interface {
	// VerifyToken checks a bearer token and returns the stable uid it
	// was issued for. Expired, malformed and revoked tokens all fail.
	VerifyToken(ctx context.Context, token string) (string, error)

	// GetProfile fetches the provider profile for a verified uid.
	GetProfile(ctx context.Context, uid string) (*Profile, error)

	// CreateAccount registers a new account with the provider and
	// returns its uid. The password is held by the provider only.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}
