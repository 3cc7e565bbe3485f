package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/timezone"
)

// ======================================================
// BUSINESS ERROR → HTTP STATUS
// ======================================================

var badRequestCodes = map[string]string{
	"invalid_role":          "Unknown provider role.",
	"invalid_start_time":    "Start time must be RFC 3339.",
	"invalid_state":         "Malformed OAuth state.",
	"missing_code":          "Missing authorization code.",
	"missing_event_id":      "Missing event id.",
	"unsupported_file_type": "Only PDF, JPEG and PNG uploads are accepted.",
	"invalid_pickup_time":   "Pickup time could not be parsed.",
	"username_taken":        "That username is already registered.",
}

var notFoundCodes = map[string]string{
	"provider_not_found":    "Provider not found.",
	"patient_not_found":     "Patient not found.",
	"doctor_not_found":      "Doctor not found.",
	"pharmacist_not_found":  "Pharmacist not found.",
	"transporter_not_found": "Transporter not found.",
	"event_not_found":       "Calendar event not found.",
}

// writeBusiness maps a use case error onto the HTTP envelope.
func writeBusiness(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if msg, ok := badRequestCodes[be.Code]; ok {
		httperr.BadRequest(c, be.Code, msg)
		return
	}
	if msg, ok := notFoundCodes[be.Code]; ok {
		httperr.NotFound(c, be.Code, msg)
		return
	}

	switch be.Code {
	case "provider_not_authenticated":
		httperr.Unauthorized(c, be.Code, "Provider has not connected a calendar.")
	case "invalid_credentials":
		httperr.Unauthorized(c, be.Code, "Invalid username or password.")
	default:
		// auth_exchange_failed, calendar_*_failed, file_store_failed
		httperr.Internal(c, be.Code, "Upstream operation failed.")
	}
}

// ======================================================
// TIME HELPERS
// ======================================================

// parseRangeParam reads an RFC 3339 timestamp or a bare date in the
// clinic timezone.
func parseRangeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, timezone.Location(timezone.DefaultTimezone))
}

// parsePickupTime accepts RFC 3339 or "2006-01-02 15:04" in the clinic
// timezone.
func parsePickupTime(value, tz string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", value, timezone.Location(tz))
}
