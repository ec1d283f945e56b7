// Package email sends transactional e-mail through Resend.
//
// Templates are embedded into the binary and rendered with html/template.
package email

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/corecord/corecord-backend/internal/config"
)

type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
}

// Render executes templateName with data.
func Render(templateName Template, data map[string]string) (string, error) {
	tmpl := templates.Lookup(string(templateName) + ".html")
	if tmpl == nil {
		return "", errors.Errorf("unknown email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	sent, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().Str("email_id", sent.Id).Str("template", string(templateName)).Msg("email sent")
	return nil
}
