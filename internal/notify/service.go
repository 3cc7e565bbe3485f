package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mwangie/CareToCrown/internal/models"
)

// Service fans booking life-cycle messages out over WhatsApp and email.
// Every send is independent: one failed channel or recipient never
// blocks another, and nothing here returns an error to the booking
// path. Failures are logged and dropped.
type Service struct {
	whatsapp WhatsAppSender
	email    EmailSender
}

func NewService(whatsapp WhatsAppSender, email EmailSender) *Service {
	return &Service{whatsapp: whatsapp, email: email}
}

func (s *Service) sendWhatsApp(ctx context.Context, p *models.Provider, text string) {
	if s.whatsapp == nil {
		return
	}
	if p.Cellphone == "" {
		log.Printf("notify: %s %q has no cellphone, skipping whatsapp", p.Role, p.Name)
		return
	}
	if err := s.whatsapp.Send(ctx, p.Cellphone, text); err != nil {
		log.Printf("notify: whatsapp to %s failed: %v", p.Cellphone, err)
	}
}

func (s *Service) sendEmail(ctx context.Context, p *models.Provider, subject, body string) {
	if s.email == nil {
		return
	}
	if p.Email == "" {
		log.Printf("notify: %s %q has no email, skipping email", p.Role, p.Name)
		return
	}
	msg := EmailMessage{To: p.Email, ToName: p.Name, Subject: subject, Body: body}
	if err := s.email.Send(ctx, msg); err != nil {
		log.Printf("notify: email to %s failed: %v", p.Email, err)
	}
}

// BookingConfirmed notifies both parties of a new appointment: patient
// WhatsApp, provider WhatsApp, patient email, provider email — up to
// four independent attempts.
func (s *Service) BookingConfirmed(ctx context.Context, patient, provider *models.Provider, start time.Time) {
	when := FormatDateTime(start)

	s.sendWhatsApp(ctx, patient, fmt.Sprintf(
		"Your appointment with %s at %s is confirmed for %s.",
		provider.Name, provider.Location, when,
	))
	s.sendWhatsApp(ctx, provider, fmt.Sprintf(
		"New appointment with %s on %s.",
		patient.Name, when,
	))

	s.sendEmail(ctx, patient, "Appointment confirmed", fmt.Sprintf(
		"Dear %s,\n\nYour appointment with %s (%s) is confirmed for %s.\n\nCare To Crown",
		patient.Name, provider.Name, provider.Location, when,
	))
	s.sendEmail(ctx, provider, "New appointment booked", fmt.Sprintf(
		"Dear %s,\n\nA new appointment with %s has been booked for %s.\n\nCare To Crown",
		provider.Name, patient.Name, when,
	))
}

// TransportRequested sends the ride details to the assigned transporter.
func (s *Service) TransportRequested(ctx context.Context, transporter, doctor *models.Provider, patientName, pickupLocation string, start time.Time) {
	s.sendWhatsApp(ctx, transporter, fmt.Sprintf(
		"Ride request: pick up %s at %s, drop off at %s (%s) for %s.",
		patientName, pickupLocation, doctor.Name, doctor.Location, FormatDateTime(start),
	))
}

// PrescriptionReceived tells the pharmacist a prescription was uploaded
// for an upcoming slot.
func (s *Service) PrescriptionReceived(ctx context.Context, pharmacist *models.Provider, patientName string, start time.Time) {
	when := FormatDateTime(start)

	s.sendWhatsApp(ctx, pharmacist, fmt.Sprintf(
		"Prescription received from %s for the %s appointment.",
		patientName, when,
	))
	s.sendEmail(ctx, pharmacist, "Prescription uploaded", fmt.Sprintf(
		"Dear %s,\n\n%s has uploaded a prescription for their appointment on %s.\n\nCare To Crown",
		pharmacist.Name, patientName, when,
	))
}

// PrescriptionReady tells the patient when their medication can be
// collected.
func (s *Service) PrescriptionReady(ctx context.Context, patient, pharmacist *models.Provider, pickup time.Time) {
	when := FormatDateTime(pickup)

	s.sendWhatsApp(ctx, patient, fmt.Sprintf(
		"Your prescription at %s is ready for collection from %s.",
		pharmacist.Name, when,
	))
	s.sendEmail(ctx, patient, "Prescription ready for collection", fmt.Sprintf(
		"Dear %s,\n\nYour prescription at %s (%s) will be ready for collection from %s.\n\nCare To Crown",
		patient.Name, pharmacist.Name, pharmacist.Location, when,
	))
}
