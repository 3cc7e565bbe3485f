package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/usecase/booking"
)

type TransportHandler struct {
	notifyTransporter *booking.NotifyTransporter
}

func NewTransportHandler(notifyTransporter *booking.NotifyTransporter) *TransportHandler {
	return &TransportHandler{notifyTransporter: notifyTransporter}
}

type TransportAppointment struct {
	DoctorID       uint   `json:"doctorId" binding:"required"`
	PatientName    string `json:"patientName" binding:"required"`
	PickupLocation string `json:"pickupLocation" binding:"required"`
	StartTime      string `json:"startTime" binding:"required"`
}

type NotifyTransporterRequest struct {
	TransporterID uint                 `json:"transporterId"`
	Appointment   TransportAppointment `json:"appointment" binding:"required"`
}

func (h *TransportHandler) Notify(c *gin.Context) {
	var req NotifyTransporterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	err := h.notifyTransporter.Execute(c.Request.Context(), booking.NotifyTransporterInput{
		TransporterID:  req.TransporterID,
		DoctorID:       req.Appointment.DoctorID,
		PatientName:    req.Appointment.PatientName,
		PickupLocation: req.Appointment.PickupLocation,
		StartTime:      req.Appointment.StartTime,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
