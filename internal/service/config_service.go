package service

import (
	"os"

	"vincanto/internal/entities"
	"vincanto/internal/pricing"
	"vincanto/internal/repository"
)

const maskedValue = "***masked***"

type ConfigService struct {
	pricingRepo *repository.PricingRepository
}

func NewConfigService(pricingRepo *repository.PricingRepository) *ConfigService {
	return &ConfigService{pricingRepo: pricingRepo}
}

func (s *ConfigService) GetPricing() (*pricing.Config, error) {
	return s.pricingRepo.GetCurrent()
}

func (s *ConfigService) UpdatePricing(upd entities.PricingUpdate) (*pricing.Config, error) {
	return s.pricingRepo.Update(upd)
}

// Settings exposes the environment-derived configuration to the admin panel.
// Secrets are masked, never echoed back.
func (s *ConfigService) Settings() entities.SettingsResponse {
	return entities.SettingsResponse{
		Email: entities.EmailSettings{
			FromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
			FromName:  os.Getenv("SENDGRID_FROM_NAME"),
			APIKey:    maskSecret(os.Getenv("SENDGRID_API_KEY")),
		},
		Notifications: entities.NotificationSettings{
			AdminEmail: os.Getenv("ADMIN_EMAIL"),
			SMSEnabled: os.Getenv("NOTIFY_SMS_ENABLED") == "true",
			AdminPhone: os.Getenv("ADMIN_PHONE"),
		},
		Payments: entities.PaymentSettings{
			StripeEnabled: os.Getenv("STRIPE_SECRET_KEY") != "",
			SecretKey:     maskSecret(os.Getenv("STRIPE_SECRET_KEY")),
			WebhookSecret: maskSecret(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		},
	}
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	return maskedValue
}
