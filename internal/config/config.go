package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	BaseURL      string `mapstructure:"BASE_URL"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	CSRFKey           string `mapstructure:"CSRF_KEY"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	SecureCookies     bool   `mapstructure:"SECURE_COOKIES"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`

	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "anmeldung.db")
	viper.SetDefault("BASE_URL", "http://127.0.0.1:8080")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_FROM", "anmeldung@tsv-bitzfeld.de")

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("CSRF_KEY")
	viper.BindEnv("ADMIN_PASSWORD_HASH")
	viper.BindEnv("SECURE_COOKIES")
	viper.BindEnv("SMTP_HOST")
	viper.BindEnv("SMTP_USERNAME")
	viper.BindEnv("SMTP_PASSWORD")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
