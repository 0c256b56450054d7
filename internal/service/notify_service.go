package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"vincanto/internal/entities"
)

type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// SendBookingEmail sends the guest a booking email for the given status
// ("received", "confirmed", "cancelled"). Delivery happens asynchronously.
func (s *NotifyService) SendBookingEmail(booking entities.BookingResponse, status string) {
	emailData := entities.BookingEmailData{
		GuestName:         booking.GuestName,
		ReferenceCode:     booking.ReferenceCode,
		CheckInFormatted:  booking.CheckInDate.Format("02 Jan 2006"),
		CheckOutFormatted: booking.CheckOutDate.Format("02 Jan 2006"),
		Nights:            booking.Nights,
		NumGuests:         booking.NumAdults + booking.NumChildren,
		TotalAmount:       booking.TotalAmount,
		DepositAmount:     booking.DepositAmount,
		Currency:          "EUR",
		Status:            status,
		CurrentYear:       time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Your Vincanto booking is %s - Code: %s", status, emailData.ReferenceCode)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour booking at Vincanto is %s.\n\n"+
			"Booking details:\n"+
			"Reference code: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n"+
			"Guests: %d\n"+
			"Total: %.2f EUR\n"+
			"Deposit: %.2f EUR\n\n"+
			"Thank you for choosing Vincanto.",
		emailData.GuestName, status, emailData.ReferenceCode,
		emailData.CheckInFormatted, emailData.CheckOutFormatted,
		emailData.Nights, emailData.NumGuests, emailData.TotalAmount, emailData.DepositAmount,
	)

	htmlBody := plainTextBody
	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: could not parse booking email template (%s): %v", tmplPath, err)
	} else {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: could not render booking email template for %s: %v", emailData.ReferenceCode, err)
		} else {
			htmlBody = htmlBodyBuffer.String()
		}
	}

	go func(toEmail, guestName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, guestName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERT (async): booking email for %s failed: %v", emailData.ReferenceCode, errEmail)
		}
	}(booking.GuestEmail, emailData.GuestName, emailSubject, plainTextBody, htmlBody)
}

// SendAdminBookingAlert notifies the property owner about a new booking
// request, by email and optionally by SMS.
func (s *NotifyService) SendAdminBookingAlert(booking entities.BookingResponse) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("WARNING: ADMIN_EMAIL is not set. Admin booking alert will not be sent.")
		return
	}

	subject := fmt.Sprintf("New booking request %s - %s %s", booking.ReferenceCode, booking.GuestName, booking.GuestSurname)
	body := fmt.Sprintf(
		"New booking request.\n\n"+
			"Reference code: %s\n"+
			"Guest: %s %s (%s, %s)\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Adults: %d, Children: %d\n"+
			"Parking: %s\n"+
			"Total: %.2f EUR (deposit %.2f EUR)\n"+
			"Payment: %s / %s",
		booking.ReferenceCode,
		booking.GuestName, booking.GuestSurname, booking.GuestEmail, booking.GuestPhone,
		booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"),
		booking.NumAdults, booking.NumChildren,
		booking.ParkingOption,
		booking.TotalAmount, booking.DepositAmount,
		booking.PaymentMethod, booking.PaymentType,
	)

	go func() {
		if err := SendEmailWithSendGrid(adminEmail, "Vincanto Admin", subject, body, ""); err != nil {
			log.Printf("ALERT (async): admin alert email for %s failed: %v", booking.ReferenceCode, err)
		}
	}()

	if os.Getenv("NOTIFY_SMS_ENABLED") == "true" {
		adminPhone := os.Getenv("ADMIN_PHONE")
		smsMessage := fmt.Sprintf("Vincanto: new booking %s, %s to %s, %d guests.",
			booking.ReferenceCode,
			booking.CheckInDate.Format("02/01"), booking.CheckOutDate.Format("02/01"),
			booking.NumAdults+booking.NumChildren,
		)
		go func() {
			if err := SendSMS(adminPhone, smsMessage); err != nil {
				log.Printf("ALERT (async): admin alert SMS for %s failed: %v", booking.ReferenceCode, err)
			}
		}()
	}
}

// SendContactEmails forwards a contact form message to the owner and sends
// the guest a confirmation copy.
func (s *NotifyService) SendContactEmails(req entities.ContactRequest) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is not set")
	}

	adminSubject := fmt.Sprintf("New contact request from %s", req.Name)
	adminBody := fmt.Sprintf(
		"New message from the contact form.\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Guests: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n\n"+
			"Message:\n%s",
		req.Name, req.Email, req.Phone, req.Guests, req.CheckIn, req.CheckOut, req.Message,
	)
	if err := SendEmailWithSendGrid(adminEmail, "Vincanto Admin", adminSubject, adminBody, ""); err != nil {
		return err
	}

	guestSubject := "We received your message - Vincanto"
	guestBody := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for contacting Vincanto. We received your message and will get back to you as soon as possible.\n\n"+
			"Your message:\n%s\n\n"+
			"Vincanto",
		req.Name, req.Message,
	)
	go func() {
		if err := SendEmailWithSendGrid(req.Email, req.Name, guestSubject, guestBody, ""); err != nil {
			log.Printf("ALERT (async): contact confirmation to %s failed: %v", req.Email, err)
		}
	}()
	return nil
}
