package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// MailClient sends transactional email through an HTTP mail API
// (Resend-compatible: POST /emails with a bearer key).
type MailClient struct {
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *logrus.Logger
}

type mailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func NewMailClient(endpoint, apiKey, from string, log *logrus.Logger) *MailClient {
	return &MailClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Send delivers a single HTML email. The error includes the API status
// and response body so reminder failures are diagnosable from logs.
func (c *MailClient) Send(ctx context.Context, to, subject, html string) error {
	payload := mailPayload{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warnf("Mail API returned %d for %s: %s", resp.StatusCode, to, string(respBody))
		return fmt.Errorf("mail API status %d for %s", resp.StatusCode, to)
	}

	c.log.Debugf("Mail sent to %s: %s", to, subject)
	return nil
}
