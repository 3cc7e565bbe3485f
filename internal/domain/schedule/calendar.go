package schedule

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// ===============================
// Remote calendar collaborators
// ===============================

// Authenticator runs the authorization-code flow for a provider. The
// state string carries the provider id through the external redirect.
type Authenticator interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// CalendarService talks to the provider's remote calendar using their
// stored credential. Implementations own transport and timeouts.
type CalendarService interface {
	ListEvents(ctx context.Context, providerID uint, tok *oauth2.Token, timeMin, timeMax time.Time) ([]Event, error)
	InsertEvent(ctx context.Context, providerID uint, tok *oauth2.Token, ev Event) (string, error)
	DeleteEvent(ctx context.Context, providerID uint, tok *oauth2.Token, eventID string) error
}
