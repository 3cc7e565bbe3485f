package googlecal

import (
	"context"
	"log"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/mwangie/CareToCrown/internal/credentials"
	schedule "github.com/mwangie/CareToCrown/internal/domain/schedule"
)

const calendarID = "primary"

// Service talks to the provider's primary Google calendar. Tokens are
// refreshed on demand by the oauth2 token source; when a refresh
// produces a new access token it is written back to the store so the
// next request skips the refresh round-trip.
type Service struct {
	cfg   *oauth2.Config
	store credentials.Store
}

func NewService(oauth *OAuth, store credentials.Store) *Service {
	return &Service{cfg: oauth.Config(), store: store}
}

func (s *Service) client(ctx context.Context, tok *oauth2.Token) (*calendar.Service, oauth2.TokenSource, error) {
	ts := s.cfg.TokenSource(ctx, tok)
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, nil, err
	}
	return svc, ts, nil
}

func (s *Service) persistRefreshed(ctx context.Context, providerID uint, old *oauth2.Token, ts oauth2.TokenSource) {
	if s.store == nil {
		return
	}
	latest, err := ts.Token()
	if err != nil {
		return
	}
	if latest.AccessToken != old.AccessToken {
		if err := s.store.Put(ctx, providerID, latest); err != nil {
			log.Println("googlecal: failed to persist refreshed token:", err)
		}
	}
}

func (s *Service) ListEvents(
	ctx context.Context,
	providerID uint,
	tok *oauth2.Token,
	timeMin time.Time,
	timeMax time.Time,
) ([]schedule.Event, error) {

	svc, ts, err := s.client(ctx, tok)
	if err != nil {
		return nil, err
	}

	res, err := svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	s.persistRefreshed(ctx, providerID, tok, ts)

	events := make([]schedule.Event, 0, len(res.Items))
	for _, item := range res.Items {
		// All-day events carry Date instead of DateTime; they have no
		// slot-aligned start and are skipped.
		if item.Start == nil || item.Start.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			continue
		}
		var end time.Time
		if item.End != nil && item.End.DateTime != "" {
			end, _ = time.Parse(time.RFC3339, item.End.DateTime)
		}

		events = append(events, schedule.Event{
			ID:      item.Id,
			Summary: item.Summary,
			Start:   start.In(timeMin.Location()),
			End:     end.In(timeMin.Location()),
		})
	}

	return events, nil
}

func (s *Service) InsertEvent(
	ctx context.Context,
	providerID uint,
	tok *oauth2.Token,
	ev schedule.Event,
) (string, error) {

	svc, ts, err := s.client(ctx, tok)
	if err != nil {
		return "", err
	}

	created, err := svc.Events.Insert(calendarID, &calendar.Event{
		Summary: ev.Summary,
		Start:   &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	s.persistRefreshed(ctx, providerID, tok, ts)

	return created.Id, nil
}

func (s *Service) DeleteEvent(
	ctx context.Context,
	providerID uint,
	tok *oauth2.Token,
	eventID string,
) error {

	svc, ts, err := s.client(ctx, tok)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return err
	}

	s.persistRefreshed(ctx, providerID, tok, ts)

	return nil
}

// Compile-time check
var _ schedule.CalendarService = (*Service)(nil)
