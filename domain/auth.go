package domain

import "time"

// TokenRecord represents issued authentication token metadata. Records are
// never physically removed; expiry is checked at read time.
type TokenRecord struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
