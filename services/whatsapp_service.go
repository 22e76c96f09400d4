package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Pushkal2407/nutri-llama/config"
	"github.com/Pushkal2407/nutri-llama/logger"

	"go.uber.org/zap"
)

// MessageSender delivers outbound replies. Fire-and-forget from the
// pipeline's perspective: delivery failures are logged here, never retried.
type MessageSender interface {
	Send(to, body string) error
}

// WhatsAppService sends messages through the Twilio WhatsApp API.
type WhatsAppService struct {
	accountSID string
	authToken  string
	from       string // Twilio sandbox WhatsApp number
	baseURL    string
	client     *http.Client
}

func NewWhatsAppService() *WhatsAppService {
	return &WhatsAppService{
		accountSID: config.GetEnv("TWILIO_ACCOUNT_SID", ""),
		authToken:  config.GetEnv("TWILIO_AUTH_TOKEN", ""),
		from:       config.GetEnv("WHATSAPP_FROM", ""),
		baseURL:    config.GetEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *WhatsAppService) Send(to, body string) error {
	if s.accountSID == "" || s.authToken == "" {
		return fmt.Errorf("twilio credentials not configured")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	form := url.Values{}
	form.Set("From", "whatsapp:"+s.from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create twilio request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("whatsapp send failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Error("whatsapp send rejected",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return fmt.Errorf("twilio api error %d: %s", resp.StatusCode, string(respBody))
	}

	logger.Info("whatsapp message sent", zap.String("to", to))
	return nil
}
