package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetConfirmedIDsPastCheckout returns confirmed bookings whose stay already ended.
func (r *JobRepository) GetConfirmedIDsPastCheckout() ([]int, error) {
	query := `SELECT id FROM bookings WHERE booking_status = 'confirmed' AND check_out_date <= CURRENT_DATE`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed bookings past checkout: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

func (r *JobRepository) UpdateBookingStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE bookings SET booking_status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating booking statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d bookings to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// DeletePendingOlderThan removes pending bookings that never completed payment.
func (r *JobRepository) DeletePendingOlderThan(cutoff time.Time) (int64, error) {
	query := `DELETE FROM bookings WHERE booking_status = 'pending' AND created_at < $1`
	result, err := r.DB.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error deleting stale pending bookings: %w", err)
	}
	return result.RowsAffected()
}
