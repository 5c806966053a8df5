// Package mail sends transactional email through the Mailgun messages
// API.
package mail

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Mailer struct {
	apiKey    string
	domain    string
	fromEmail string
	baseURL   string
	http      *http.Client
}

func NewMailer(apiKey, domain, fromEmail string) *Mailer {
	return &Mailer{
		apiKey:    apiKey,
		domain:    domain,
		fromEmail: fromEmail,
		baseURL:   "https://api.mailgun.net/v3",
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Enabled reports whether the mailer has credentials. Without them every
// send becomes a logged no-op so the rest of the system keeps working in
// development.
func (m *Mailer) Enabled() bool {
	return m.apiKey != "" && m.domain != ""
}

// SendVerification emails an address its email-verification code. Errors
// are logged, never returned: verification mail must not fail the
// mutation that triggered it.
func (m *Mailer) SendVerification(email, code string) {
	if !m.Enabled() {
		log.Debug().Str("to", email).Msg("mailer disabled, skipping verification email")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.Send(ctx, email, "Verify Your Email",
			"Use this code to verify your email: "+code); err != nil {
			log.Error().Err(err).Str("to", email).Msg("send verification email")
		}
	}()
}

// Send posts one message to the Mailgun API.
func (m *Mailer) Send(ctx context.Context, to, subject, text string) error {
	form := url.Values{}
	form.Set("from", m.fromEmail)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("text", text)

	endpoint := m.baseURL + "/" + m.domain + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create mailgun request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("mailgun request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailgun non-2xx (%d): %s", resp.StatusCode, string(b))
	}
	return nil
}
