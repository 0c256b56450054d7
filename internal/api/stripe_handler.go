package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"vincanto/internal/service"
)

type StripeWebhookHandler struct {
	StripeSecret   string
	bookingService *service.BookingService
}

func NewStripeWebhookHandler(stripeSecret string, bookingService *service.BookingService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		StripeSecret:   stripeSecret,
		bookingService: bookingService,
	}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if sess.ID == "" {
			log.Printf("No session ID in checkout.session.completed")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := h.bookingService.ConfirmBySessionID(sess.ID); err != nil {
			log.Printf("DB error confirming session %s: %v", sess.ID, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	case "charge.refunded":
		var charge stripe.Charge
		json.Unmarshal(event.Data.Raw, &charge)
		if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
			sessionID, err := sessionIDByPaymentIntent(charge.PaymentIntent.ID)
			if err != nil {
				log.Printf("No session_id found for PaymentIntent %s: %v", charge.PaymentIntent.ID, err)
				w.WriteHeader(http.StatusOK)
				return
			}
			if err := h.bookingService.CancelBySessionID(sessionID); err != nil {
				log.Printf("DB error cancelling session %s: %v", sessionID, err)
			}
		}
	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

// GetBookingBySessionID lets the payment confirmation page resolve the
// booking behind a checkout session.
func (h *StripeWebhookHandler) GetBookingBySessionID(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id required", http.StatusBadRequest)
		return
	}
	booking, err := h.bookingService.Repo.GetByStripeSessionID(sessionID)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reference_code": booking.ReferenceCode,
		"booking_status": booking.BookingStatus,
		"payment_status": booking.PaymentStatus,
	})
}

func sessionIDByPaymentIntent(paymentIntentID string) (string, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: &paymentIntentID,
	}
	params.Limit = stripe.Int64(1)
	it := session.List(params)
	for it.Next() {
		sess := it.CheckoutSession()
		if sess != nil && sess.ID != "" {
			return sess.ID, nil
		}
	}
	return "", fmt.Errorf("no session found for PaymentIntent %s", paymentIntentID)
}
