package service

import (
	"net/http"
	"strings"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
)

type ContactService struct {
	notify *NotifyService
}

func NewContactService(notify *NotifyService) *ContactService {
	return &ContactService{notify: notify}
}

// Submit validates a contact form message and forwards it to the owner.
func (s *ContactService) Submit(req entities.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		return apperrors.NewHTTPError(http.StatusBadRequest, "name and message are required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	req.Email = email
	return s.notify.SendContactEmails(req)
}
