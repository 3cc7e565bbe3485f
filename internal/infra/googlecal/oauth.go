package googlecal

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/mwangie/CareToCrown/internal/config"
	schedule "github.com/mwangie/CareToCrown/internal/domain/schedule"
)

// OAuth implements the authorization-code flow against Google. The state
// passed to AuthURL is round-tripped through the consent redirect and
// carries the provider id.
type OAuth struct {
	cfg *oauth2.Config
}

func NewOAuth(cfg *config.Config) *OAuth {
	return &OAuth{
		cfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{calendar.CalendarScope},
			Endpoint:     google.Endpoint,
		},
	}
}

func (o *OAuth) AuthURL(state string) string {
	return o.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (o *OAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return o.cfg.Exchange(ctx, code)
}

// Config exposes the oauth2 config so the calendar service can build
// refreshing token sources from stored credentials.
func (o *OAuth) Config() *oauth2.Config {
	return o.cfg
}

// Compile-time check
var _ schedule.Authenticator = (*OAuth)(nil)
