package credentials

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNotFound means the provider has never linked a calendar (or the
// stored credential was cleared).
var ErrNotFound = errors.New("credentials: token not found")

// Store persists one OAuth token bundle per provider. Put overwrites on
// re-authorization; refresh is left to the calendar client.
type Store interface {
	Get(ctx context.Context, providerID uint) (*oauth2.Token, error)
	Put(ctx context.Context, providerID uint, tok *oauth2.Token) error
}
