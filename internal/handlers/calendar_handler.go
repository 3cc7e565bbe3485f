package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mwangie/CareToCrown/internal/dto"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/middleware"
	"github.com/mwangie/CareToCrown/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	authenticate *booking.Authenticate
	completeAuth *booking.CompleteAuth
	listEvents   *booking.ListEvents
	book         *booking.Book
	block        *booking.BlockSlot
	allow        *booking.AllowSlot
}

func NewCalendarHandler(
	authenticate *booking.Authenticate,
	completeAuth *booking.CompleteAuth,
	listEvents *booking.ListEvents,
	book *booking.Book,
	block *booking.BlockSlot,
	allow *booking.AllowSlot,
) *CalendarHandler {
	return &CalendarHandler{
		authenticate: authenticate,
		completeAuth: completeAuth,
		listEvents:   listEvents,
		book:         book,
		block:        block,
		allow:        allow,
	}
}

// ======================================================
// OAUTH
// ======================================================

// AuthURL hands the booking UI the consent URL to open in a popup.
func (h *CalendarHandler) AuthURL(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Query("providerId"), 10, 32)
	if err != nil || providerID == 0 {
		httperr.BadRequest(c, "invalid_provider_id", "providerId must be a positive integer.")
		return
	}

	url := h.authenticate.Execute(c.Request.Context(), uint(providerID))
	c.JSON(http.StatusOK, gin.H{"authUrl": url})
}

// AuthCallback handles the OAuth return leg. On success it closes the
// popup; failures render plain text because no UI is listening.
func (h *CalendarHandler) AuthCallback(c *gin.Context) {
	err := h.completeAuth.Execute(c.Request.Context(), booking.CompleteAuthInput{
		State: c.Query("state"),
		Code:  c.Query("code"),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Authentication failed")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, "<script>window.close();</script>")
}

// ======================================================
// EVENTS
// ======================================================

func (h *CalendarHandler) Events(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Query("providerId"), 10, 32)
	if err != nil || providerID == 0 {
		httperr.BadRequest(c, "invalid_provider_id", "providerId must be a positive integer.")
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "start and end are required.")
		return
	}

	rangeStart, err := parseRangeParam(startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "start could not be parsed.")
		return
	}
	rangeEnd, err := parseRangeParam(endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "end could not be parsed.")
		return
	}

	slots, err := h.listEvents.Execute(c.Request.Context(), booking.ListEventsInput{
		ProviderID: uint(providerID),
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSlots(slots))
}

// ======================================================
// BOOK
// ======================================================

type BookRequest struct {
	Role        string `json:"role" binding:"required"`
	ProviderID  uint   `json:"providerId" binding:"required"`
	PatientName string `json:"patientName" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
}

func (h *CalendarHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	eventID, err := h.book.Execute(c.Request.Context(), booking.BookInput{
		Role:        req.Role,
		ProviderID:  req.ProviderID,
		PatientName: req.PatientName,
		StartTime:   req.StartTime,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "eventId": eventID})
}

// ======================================================
// BLOCK / ALLOW — doctor identity comes from the token
// ======================================================

type BlockRequest struct {
	StartTime string `json:"startTime" binding:"required"`
}

func (h *CalendarHandler) Block(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	role := c.MustGet(middleware.ContextRole).(string)

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	eventID, err := h.block.Execute(c.Request.Context(), booking.BlockSlotInput{
		Role:       role,
		ProviderID: providerID,
		StartTime:  req.StartTime,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "eventId": eventID})
}

type AllowRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

func (h *CalendarHandler) Allow(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	role := c.MustGet(middleware.ContextRole).(string)

	var req AllowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	err := h.allow.Execute(c.Request.Context(), booking.AllowSlotInput{
		Role:       role,
		ProviderID: providerID,
		EventID:    req.EventID,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
