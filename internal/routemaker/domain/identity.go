package domain

// Identity is the authenticated caller as asserted by the identity provider.
// UserID is the provider's UUID; Email is lower-cased and may be empty.
type Identity struct {
	UserID string
	Email  string
}
