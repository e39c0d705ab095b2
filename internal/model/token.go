package model

import "time"

// TokenManager issues and verifies signed bearer tokens. A token carries its
// subject and an absolute expiry; nothing is persisted server-side.
type TokenManager interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(tokenString string) (subject string, err error)
}
