package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronin9/ironlog/internal/config"
	"github.com/go-resty/resty/v2"
)

// Mailer sends outbound mail. The weekly report scheduler depends on this
// interface so tests can substitute a recorder.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, textBody string, htmlBody string) error
}

// MailgunMailer delivers mail through the Mailgun messages API.
type MailgunMailer struct {
	client *resty.Client
	domain string
	from   string
}

func NewMailgunMailer(cfg config.Mailgun) *MailgunMailer {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth("api", cfg.APIKey).
		SetTimeout(10 * time.Second)
	from := cfg.FromAddress
	if from == "" {
		from = fmt.Sprintf("IronLog <noreply@%s>", cfg.Domain)
	}
	return &MailgunMailer{
		client: client,
		domain: cfg.Domain,
		from:   from,
	}
}

func (mailer *MailgunMailer) Send(ctx context.Context, to string, subject string, textBody string, htmlBody string) error {
	form := map[string]string{
		"from":    mailer.from,
		"to":      to,
		"subject": subject,
	}
	if textBody != "" {
		form["text"] = textBody
	}
	if htmlBody != "" {
		form["html"] = htmlBody
	}

	response, err := mailer.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(fmt.Sprintf("/%s/messages", mailer.domain))
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("send mail: mailgun responded %s: %s", response.Status(), response.String())
	}
	return nil
}
