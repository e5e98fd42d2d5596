// Package mailer delivers the email-verification link through the Resend
// API. In test mode the send is skipped and the link is returned so tests
// can follow it directly.
package mailer

import (
	"errors"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
)

var ErrSendFailed = errors.New("Slanje emaila nije uspjelo.")

type Mailer struct {
	client *resend.Client
	cfg    *config.Config
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		client: resend.NewClient(cfg.Email.ResendAPIKey),
		cfg:    cfg,
	}
}

func (m *Mailer) SendVerificationEmail(email, verificationToken string) (string, error) {
	link := fmt.Sprintf("%s/api/verify-email?token=%s", m.cfg.Server.BaseURL, verificationToken)

	if m.cfg.Server.TestMode {
		log.Printf("mailer: test mode, skipping send to %s, link: %s", email, link)
		return link, nil
	}

	body := fmt.Sprintf(`
		<div style="font-family: sans-serif; padding: 20px;">
			<h2>Dobrodošli u Sport za sve!</h2>
			<p>Molimo potvrdite svoju email adresu klikom na poveznicu ispod:</p>
			<a href="%s" style="display: inline-block; margin-top: 10px; padding: 10px 20px; background-color: #3B82F6; color: white; text-decoration: none; border-radius: 5px;">Potvrdi email</a>
			<p style="margin-top: 20px;">Ako niste vi zatražili registraciju, slobodno ignorirajte ovu poruku.</p>
		</div>`, link)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.cfg.Email.From,
		To:      []string{email},
		Subject: "Verifikacija emaila",
		Html:    body,
	})
	if err != nil {
		log.Printf("mailer: failed to send verification email to %s: %v", email, err)
		return "", ErrSendFailed
	}

	return link, nil
}
