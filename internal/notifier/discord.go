package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
)

type Notifier interface {
	NotifyRegistration(registration models.Registration) error
}

// DiscordNotifier pings the organizers' channel whenever a new registration
// comes in. Strictly best effort: a failed ping never fails the submission.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if cfg.DiscordNotificationsChannelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyRegistration(registration models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	var persons strings.Builder
	for _, p := range registration.Persons {
		fmt.Fprintf(&persons, "- %s %s (geb. %s, %s)\n", p.Firstname, p.Lastname, p.Birthdate, p.ClubMembership)
	}

	message := fmt.Sprintf("📋 **Neue Anmeldung**\n**Kontakt:** %s %s\n**Telefon:** %s\n**E-Mail:** %s\n**Personen:**\n%s",
		registration.ContactFirstname,
		registration.ContactLastname,
		registration.PhoneNumber,
		registration.Email,
		persons.String(),
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
