package entities

// PricingUpdate carries a partial pricing-configuration update from the admin
// panel. Nil fields keep their current value.
type PricingUpdate struct {
	BasePricePerAdult    *float64 `json:"base_price_per_adult"`
	AdditionalGuestPrice *float64 `json:"additional_guest_price"`
	CleaningFee          *float64 `json:"cleaning_fee"`
	ParkingFeePerNight   *float64 `json:"parking_fee_per_night"`
	TouristTaxPerPerson  *float64 `json:"tourist_tax_per_person"`
	MinimumNights        *int     `json:"minimum_nights"`
	DepositPercentage    *float64 `json:"deposit_percentage"`
	Currency             *string  `json:"currency"`
}

// SettingsResponse is the admin view of environment-derived settings.
// Secret values are masked before they leave the server.
type SettingsResponse struct {
	Email         EmailSettings        `json:"email"`
	Notifications NotificationSettings `json:"notifications"`
	Payments      PaymentSettings      `json:"payments"`
}

type EmailSettings struct {
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	APIKey    string `json:"api_key"`
}

type NotificationSettings struct {
	AdminEmail string `json:"admin_email"`
	SMSEnabled bool   `json:"sms_enabled"`
	AdminPhone string `json:"admin_phone"`
}

type PaymentSettings struct {
	StripeEnabled bool   `json:"stripe_enabled"`
	SecretKey     string `json:"secret_key"`
	WebhookSecret string `json:"webhook_secret"`
}
