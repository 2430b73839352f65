package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sender delivers one SMS. Implementations must be safe for use from
// the dispatcher goroutine.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// SMSClient posts to an HTTP SMS gateway (Fast2SMS-style form API).
type SMSClient struct {
	gatewayURL string
	apiKey     string
	sender     string
	client     *http.Client
}

func NewSMSClient(gatewayURL, apiKey, sender string) *SMSClient {
	return &SMSClient{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		sender:     sender,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *SMSClient) Send(ctx context.Context, phone, message string) error {
	form := url.Values{}
	form.Set("sender_id", s.sender)
	form.Set("numbers", phone)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.gatewayURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}

// NoopSender is used when no gateway is configured.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, phone, message string) error {
	return nil
}
