package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mwangie/CareToCrown/internal/config"
	"github.com/mwangie/CareToCrown/internal/domain/pharmacy"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/httpresp"
	"github.com/mwangie/CareToCrown/internal/middleware"
	"github.com/mwangie/CareToCrown/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PrescriptionHandler struct {
	upload    *booking.UploadPrescription
	markReady *booking.MarkReady
	records   pharmacy.Records
	config    *config.Config
}

func NewPrescriptionHandler(
	upload *booking.UploadPrescription,
	markReady *booking.MarkReady,
	records pharmacy.Records,
	cfg *config.Config,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		upload:    upload,
		markReady: markReady,
		records:   records,
		config:    cfg,
	}
}

// ======================================================
// UPLOAD — multipart form, file field "prescription"
// ======================================================

func (h *PrescriptionHandler) Upload(c *gin.Context) {
	pharmacistID, err := strconv.ParseUint(c.PostForm("pharmacistId"), 10, 32)
	if err != nil || pharmacistID == 0 {
		httperr.BadRequest(c, "invalid_pharmacist_id", "pharmacistId must be a positive integer.")
		return
	}

	patientName := c.PostForm("patientName")
	startTime := c.PostForm("startTime")
	if patientName == "" || startTime == "" {
		httperr.BadRequest(c, "invalid_request", "patientName and startTime are required.")
		return
	}

	fileHeader, err := c.FormFile("prescription")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A prescription file is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "file_read_failed", "Could not read the upload.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "file_read_failed", "Could not read the upload.")
		return
	}

	filename, err := h.upload.Execute(c.Request.Context(), booking.UploadPrescriptionInput{
		PharmacistID: uint(pharmacistID),
		PatientName:  patientName,
		StartTime:    startTime,
		Data:         data,
		MimeType:     fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "filename": filename})
}

// ======================================================
// READY
// ======================================================

type MarkReadyRequest struct {
	PharmacistID uint   `json:"pharmacistId" binding:"required"`
	PatientName  string `json:"patientName" binding:"required"`
	SlotStart    string `json:"startTime"`
	PickupTime   string `json:"pickupTime" binding:"required"`
}

func (h *PrescriptionHandler) Ready(c *gin.Context) {
	var req MarkReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	pickup, err := parsePickupTime(req.PickupTime, h.config.ClinicTimezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_pickup_time", "Pickup time could not be parsed.")
		return
	}

	err = h.markReady.Execute(c.Request.Context(), booking.MarkReadyInput{
		PharmacistID: req.PharmacistID,
		PatientName:  req.PatientName,
		SlotStart:    req.SlotStart,
		PickupTime:   pickup,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// LIST — pharmacist dashboard, identity from the token
// ======================================================

func (h *PrescriptionHandler) List(c *gin.Context) {
	pharmacistID := c.MustGet(middleware.ContextProviderID).(uint)

	list, err := h.records.ListForPharmacist(c.Request.Context(), pharmacistID)
	if err != nil {
		httperr.Internal(c, "prescription_list_failed", "Could not list prescriptions.")
		return
	}

	httpresp.List(c, list)
}
