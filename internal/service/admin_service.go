package service

import (
	"net/http"
	"strings"

	"vincanto/internal/availability"
	"vincanto/internal/db"
	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/repository"
)

// AdminService manages the manually blocked periods.
type AdminService struct {
	blockedRepo *repository.BlockedDateRepository
}

func NewAdminService(blockedRepo *repository.BlockedDateRepository) *AdminService {
	return &AdminService{blockedRepo: blockedRepo}
}

func (s *AdminService) ListBlockedDates() ([]entities.BlockedDateResponse, error) {
	blocks, err := s.blockedRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]entities.BlockedDateResponse, 0, len(blocks))
	for _, bd := range blocks {
		out = append(out, toBlockedDateResponse(bd))
	}
	return out, nil
}

func (s *AdminService) CreateBlockedDate(req entities.BlockedDateRequest) (*entities.BlockedDateResponse, error) {
	start, end, err := parseStayDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if _, err := availability.NewDateRange(start, end); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "reason is required")
	}

	bd := &db.BlockedDate{
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		CreatedBy: "admin",
	}
	if err := s.blockedRepo.Create(bd); err != nil {
		return nil, err
	}
	resp := toBlockedDateResponse(*bd)
	return &resp, nil
}

func (s *AdminService) DeleteBlockedDate(id int) error {
	return s.blockedRepo.Delete(id)
}

func toBlockedDateResponse(bd db.BlockedDate) entities.BlockedDateResponse {
	return entities.BlockedDateResponse{
		ID:        bd.ID,
		StartDate: bd.StartDate,
		EndDate:   bd.EndDate,
		Reason:    bd.Reason,
		CreatedBy: bd.CreatedBy,
		CreatedAt: bd.CreatedAt,
	}
}
