package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/domain/schedule"
	"github.com/mwangie/CareToCrown/internal/models"
)

// In-memory stand-ins shared by the tests in this package.

type fakeDirectory struct {
	providers []models.Provider
}

func (f *fakeDirectory) ListByRole(_ context.Context, role string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDirectory) FindByID(_ context.Context, role string, id uint) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].Role == role && f.providers[i].ID == id {
			return &f.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeDirectory) FindByName(_ context.Context, role, name string) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].Role == role && f.providers[i].Name == name {
			return &f.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeDirectory) FindByUsername(_ context.Context, role, username string) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].Role == role && f.providers[i].Username == strings.ToLower(username) {
			return &f.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeDirectory) Append(_ context.Context, p *models.Provider) error {
	f.providers = append(f.providers, *p)
	return nil
}

type fakeCredStore struct {
	tokens map[uint]*oauth2.Token
}

func newFakeCredStore() *fakeCredStore {
	return &fakeCredStore{tokens: map[uint]*oauth2.Token{}}
}

func (f *fakeCredStore) Get(_ context.Context, providerID uint) (*oauth2.Token, error) {
	tok, ok := f.tokens[providerID]
	if !ok {
		return nil, credentials.ErrNotFound
	}
	return tok, nil
}

func (f *fakeCredStore) Put(_ context.Context, providerID uint, tok *oauth2.Token) error {
	f.tokens[providerID] = tok
	return nil
}

type fakeCalendar struct {
	events    []schedule.Event
	inserted  []schedule.Event
	deleted   []string
	listCalls int
	failList  bool
	failInser bool
}

func (f *fakeCalendar) ListEvents(_ context.Context, _ uint, _ *oauth2.Token, _, _ time.Time) ([]schedule.Event, error) {
	f.listCalls++
	if f.failList {
		return nil, errors.New("calendar unavailable")
	}
	return f.events, nil
}

func (f *fakeCalendar) InsertEvent(_ context.Context, _ uint, _ *oauth2.Token, ev schedule.Event) (string, error) {
	if f.failInser {
		return "", errors.New("calendar unavailable")
	}
	f.inserted = append(f.inserted, ev)
	return "evt-1", nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, _ uint, _ *oauth2.Token, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeRecords struct {
	created []models.Prescription
	updated []models.Prescription
}

func (f *fakeRecords) Create(_ context.Context, p *models.Prescription) error {
	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *p)
	return nil
}

func (f *fakeRecords) FindBySlot(_ context.Context, pharmacistID uint, patientName string, slotStart time.Time) (*models.Prescription, error) {
	for i := range f.created {
		r := &f.created[i]
		if r.PharmacistID == pharmacistID && r.PatientName == patientName && r.SlotStart.Equal(slotStart) {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRecords) Update(_ context.Context, p *models.Prescription) error {
	f.updated = append(f.updated, *p)
	return nil
}

func (f *fakeRecords) ListForPharmacist(_ context.Context, pharmacistID uint) ([]models.Prescription, error) {
	var out []models.Prescription
	for _, r := range f.created {
		if r.PharmacistID == pharmacistID {
			out = append(out, r)
		}
	}
	return out, nil
}
