package booking

import (
	"context"
	"strconv"

	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/domain/schedule"
	"github.com/mwangie/CareToCrown/internal/httperr"
)

// ======================================================
// AUTHENTICATE — build the consent URL for a provider
// ======================================================

type Authenticate struct {
	auth schedule.Authenticator
}

func NewAuthenticate(auth schedule.Authenticator) *Authenticate {
	return &Authenticate{auth: auth}
}

// Execute returns the URL the provider must visit to grant calendar
// access. The provider id rides along as the OAuth state so the
// callback knows whose credential to store.
func (uc *Authenticate) Execute(_ context.Context, providerID uint) string {
	state := strconv.FormatUint(uint64(providerID), 10)
	return uc.auth.AuthURL(state)
}

// ======================================================
// COMPLETE AUTH — handle the OAuth callback
// ======================================================

type CompleteAuthInput struct {
	State string
	Code  string
}

type CompleteAuth struct {
	auth  schedule.Authenticator
	creds credentials.Store
}

func NewCompleteAuth(auth schedule.Authenticator, creds credentials.Store) *CompleteAuth {
	return &CompleteAuth{auth: auth, creds: creds}
}

func (uc *CompleteAuth) Execute(ctx context.Context, in CompleteAuthInput) error {

	// --------------------------------------------------
	// 1. State carries the provider id
	// --------------------------------------------------
	providerID, err := strconv.ParseUint(in.State, 10, 32)
	if err != nil || providerID == 0 {
		return httperr.ErrBusiness("invalid_state")
	}

	if in.Code == "" {
		return httperr.ErrBusiness("missing_code")
	}

	// --------------------------------------------------
	// 2. Exchange the code for a token
	// --------------------------------------------------
	tok, err := uc.auth.Exchange(ctx, in.Code)
	if err != nil {
		return httperr.ErrBusiness("auth_exchange_failed")
	}

	// --------------------------------------------------
	// 3. Persist the credential
	// --------------------------------------------------
	return uc.creds.Put(ctx, uint(providerID), tok)
}
