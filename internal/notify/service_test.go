package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mwangie/CareToCrown/internal/models"
)

// Mock implementations

type mockWhatsAppSender struct {
	sent   []struct{ to, text string }
	failOn string // fail when the destination matches
}

func (m *mockWhatsAppSender) Send(_ context.Context, to, text string) error {
	if m.failOn != "" && to == m.failOn {
		return errors.New("mock whatsapp error")
	}
	m.sent = append(m.sent, struct{ to, text string }{to, text})
	return nil
}

type mockEmailSender struct {
	sent   []EmailMessage
	failOn string
}

func (m *mockEmailSender) Send(_ context.Context, msg EmailMessage) error {
	if m.failOn != "" && msg.To == m.failOn {
		return errors.New("mock email error")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testPatient() *models.Provider {
	return &models.Provider{
		ID: 4, Role: models.RolePatient, Name: "Thandi Nkosi",
		Cellphone: "+27820000001", Email: "thandi@example.com",
	}
}

func testDoctor() *models.Provider {
	return &models.Provider{
		ID: 2, Role: models.RoleDoctor, Name: "Dr Dlamini",
		Location: "12 Vilakazi St", Cellphone: "+27820000002", Email: "dlamini@example.com",
	}
}

// Tests

func TestBookingConfirmed_SendsFourMessages(t *testing.T) {
	wa := &mockWhatsAppSender{}
	em := &mockEmailSender{}
	svc := NewService(wa, em)

	start := time.Date(2026, time.September, 3, 10, 0, 0, 0, time.UTC)
	svc.BookingConfirmed(context.Background(), testPatient(), testDoctor(), start)

	if len(wa.sent) != 2 {
		t.Fatalf("expected 2 whatsapp messages, got %d", len(wa.sent))
	}
	if len(em.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(em.sent))
	}

	if !strings.Contains(wa.sent[0].text, "3rd September 2026, 10:00 AM") {
		t.Errorf("patient whatsapp missing formatted date: %q", wa.sent[0].text)
	}
	if wa.sent[0].to != "+27820000001" || wa.sent[1].to != "+27820000002" {
		t.Errorf("unexpected whatsapp recipients: %+v", wa.sent)
	}
}

func TestBookingConfirmed_WhatsAppFailureDoesNotBlockEmail(t *testing.T) {
	wa := &mockWhatsAppSender{failOn: "+27820000001"}
	em := &mockEmailSender{}
	svc := NewService(wa, em)

	start := time.Date(2026, time.September, 3, 10, 0, 0, 0, time.UTC)
	svc.BookingConfirmed(context.Background(), testPatient(), testDoctor(), start)

	// Patient whatsapp failed; doctor whatsapp and both emails still go.
	if len(wa.sent) != 1 {
		t.Errorf("expected 1 successful whatsapp message, got %d", len(wa.sent))
	}
	if len(em.sent) != 2 {
		t.Errorf("expected 2 emails despite whatsapp failure, got %d", len(em.sent))
	}
}

func TestBookingConfirmed_SkipsMissingTargets(t *testing.T) {
	wa := &mockWhatsAppSender{}
	em := &mockEmailSender{}
	svc := NewService(wa, em)

	patient := testPatient()
	patient.Cellphone = ""
	patient.Email = ""

	start := time.Date(2026, time.September, 3, 10, 0, 0, 0, time.UTC)
	svc.BookingConfirmed(context.Background(), patient, testDoctor(), start)

	if len(wa.sent) != 1 {
		t.Errorf("expected only doctor whatsapp, got %d messages", len(wa.sent))
	}
	if len(em.sent) != 1 {
		t.Errorf("expected only doctor email, got %d messages", len(em.sent))
	}
}

func TestTransportRequested_MessageContents(t *testing.T) {
	wa := &mockWhatsAppSender{}
	svc := NewService(wa, &mockEmailSender{})

	transporter := &models.Provider{
		ID: 1, Role: models.RoleTransporter, Name: "Sipho", Cellphone: "+27820000009",
	}

	start := time.Date(2026, time.September, 21, 13, 30, 0, 0, time.UTC)
	svc.TransportRequested(context.Background(), transporter, testDoctor(), "Thandi Nkosi", "45 Main Rd", start)

	if len(wa.sent) != 1 {
		t.Fatalf("expected 1 whatsapp message, got %d", len(wa.sent))
	}
	text := wa.sent[0].text
	for _, part := range []string{"Thandi Nkosi", "45 Main Rd", "Dr Dlamini", "21st September 2026, 1:30 PM"} {
		if !strings.Contains(text, part) {
			t.Errorf("transporter message missing %q: %q", part, text)
		}
	}
}

func TestPrescriptionReady_NotifiesPatientOnBothChannels(t *testing.T) {
	wa := &mockWhatsAppSender{}
	em := &mockEmailSender{}
	svc := NewService(wa, em)

	pharmacist := &models.Provider{
		ID: 3, Role: models.RolePharmacist, Name: "Crown Pharmacy", Location: "Mall of the South",
	}

	pickup := time.Date(2026, time.September, 4, 15, 0, 0, 0, time.UTC)
	svc.PrescriptionReady(context.Background(), testPatient(), pharmacist, pickup)

	if len(wa.sent) != 1 || len(em.sent) != 1 {
		t.Fatalf("expected 1 whatsapp + 1 email, got %d + %d", len(wa.sent), len(em.sent))
	}
	if !strings.Contains(em.sent[0].Body, "4th September 2026, 3:00 PM") {
		t.Errorf("email missing pickup time: %q", em.sent[0].Body)
	}
}
