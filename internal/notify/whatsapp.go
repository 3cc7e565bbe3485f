package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WhatsAppSender delivers one WhatsApp text to one number. Failures are
// the caller's to log; nothing here retries.
type WhatsAppSender interface {
	Send(ctx context.Context, toNumber, text string) error
}

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioWhatsAppSender sends through Twilio's WhatsApp messaging API.
type TwilioWhatsAppSender struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string // E.164 number registered as the WhatsApp sender
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func NewTwilioWhatsAppSender(cfg TwilioConfig) *TwilioWhatsAppSender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = twilioBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &TwilioWhatsAppSender{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func whatsAppAddr(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

func (s *TwilioWhatsAppSender) Send(ctx context.Context, toNumber, text string) error {
	form := url.Values{}
	form.Set("From", whatsAppAddr(s.from))
	form.Set("To", whatsAppAddr(toNumber))
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("whatsapp: build request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: send: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("whatsapp: twilio returned status %d: %s", res.StatusCode, string(body))
	}

	return nil
}

// StubWhatsAppSender logs instead of sending; used when Twilio
// credentials are not configured.
type StubWhatsAppSender struct{}

func (StubWhatsAppSender) Send(_ context.Context, toNumber, text string) error {
	log.Printf("stub whatsapp sender: would send to %s: %q", toNumber, text)
	return nil
}

// Compile-time checks
var (
	_ WhatsAppSender = (*TwilioWhatsAppSender)(nil)
	_ WhatsAppSender = StubWhatsAppSender{}
)
