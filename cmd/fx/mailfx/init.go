package mailfx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"edugo/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	cfg := services.SMTPConfig{
		Host:       getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:       port, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       getEnvWithDefault("SMTP_FROM", "no-reply@edugo.tw"),
		FromName:   "EduGo",
		Inbox:      getEnvWithDefault("AGENCY_INBOX", "hello@edugo.tw"),
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName: "EduGo",
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
