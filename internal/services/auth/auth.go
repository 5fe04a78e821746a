package auth

import (
	"errors"

	"scaletrailhq/scaletrail/internal/util"
)

const ServiceName = "scaletrail"

var ErrTokenNotFound = errors.New("auth token not found")

// Store persists API tokens per provider (linode, cloudflare).
type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}
