package notifier

import (
	"strings"
	"testing"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
)

func TestConfirmationBody(t *testing.T) {
	registration := models.Registration{
		ContactFirstname: "Jörg",
		ContactLastname:  "Weber",
		Email:            "joerg@example.de",
		Persons: []models.Person{
			{Firstname: "Lena", Lastname: "Weber", Birthdate: "2014-05-30", ClubMembership: "TSV Bitzfeld 1922 e.V."},
			{Firstname: "Max", Lastname: "Weber", Birthdate: "2016-02-11", ClubMembership: "TSV Schwabbach 1947 e.V."},
		},
	}

	body := confirmationBody(registration)
	for _, want := range []string{
		"Hallo Jörg Weber",
		"Lena Weber (geb. 2014-05-30, TSV Bitzfeld 1922 e.V.)",
		"Max Weber (geb. 2016-02-11, TSV Schwabbach 1947 e.V.)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q:\n%s", want, body)
		}
	}
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	if _, err := NewSMTPMailer(&config.Config{}); err == nil {
		t.Error("expected error for missing SMTP host")
	}
}

func TestNewDiscordNotifier_RequiresConfig(t *testing.T) {
	if _, err := NewDiscordNotifier(&config.Config{}); err == nil {
		t.Error("expected error for missing bot token")
	}
	if _, err := NewDiscordNotifier(&config.Config{DiscordBotToken: "token"}); err == nil {
		t.Error("expected error for missing channel ID")
	}
}
