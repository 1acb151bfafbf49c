package notifier

import (
	"fmt"
	"strings"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
	"github.com/wneessen/go-mail"
)

// Mailer sends the confirmation mail triggered from the admin dashboard.
type Mailer interface {
	SendConfirmation(registration models.Registration) error
}

type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is empty")
	}
	return &SMTPMailer{cfg: cfg}, nil
}

func (m *SMTPMailer) SendConfirmation(registration models.Registration) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.MailFrom); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(registration.Email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Anmeldebestätigung Sommerfest")
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(registration))

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SMTPUsername),
		mail.WithPassword(m.cfg.SMTPPassword),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

func confirmationBody(registration models.Registration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hallo %s %s,\n\n", registration.ContactFirstname, registration.ContactLastname)
	b.WriteString("hiermit bestätigen wir Ihre Anmeldung zum Sommerfest.\n\nAngemeldete Personen:\n")
	for _, p := range registration.Persons {
		fmt.Fprintf(&b, "- %s %s (geb. %s, %s)\n", p.Firstname, p.Lastname, p.Birthdate, p.ClubMembership)
	}
	b.WriteString("\nViele Grüße\nTSV Bitzfeld 1922 e.V.\n")
	return b.String()
}
