package service

import (
	"fmt"
	"log"
	"time"

	"vincanto/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompletePastStays marks confirmed bookings whose stay ended as completed.
func (s *JobService) CompletePastStays() error {
	log.Println("Cron Job: Checking for stays to mark as 'completed'...")

	bookingIDs, err := s.Repo.GetConfirmedIDsPastCheckout()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed bookings past checkout: %w", err)
	}

	if len(bookingIDs) == 0 {
		log.Println("Cron Job: No confirmed bookings found past their checkout date.")
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'completed'. IDs: %v", len(bookingIDs), bookingIDs)

	err = s.Repo.UpdateBookingStatuses(bookingIDs, statusCompleted)
	if err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d bookings to 'completed'.", len(bookingIDs))
	return nil
}

// PurgeStalePendingBookings drops pending bookings whose payment never
// completed, freeing the dates they were holding.
func (s *JobService) PurgeStalePendingBookings(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	deleted, err := s.Repo.DeletePendingOlderThan(cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Printf("Cron Job: Purged %d stale pending bookings.", deleted)
	}
	return deleted, nil
}
