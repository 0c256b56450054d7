package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vincanto/internal/db"
)

type BlockedDateRepository struct {
	DB *sql.DB
}

func NewBlockedDateRepository(database *sql.DB) *BlockedDateRepository {
	return &BlockedDateRepository{DB: database}
}

func (r *BlockedDateRepository) Create(bd *db.BlockedDate) error {
	query := `
		INSERT INTO blocked_dates (start_date, end_date, reason, created_by, external_uid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return r.DB.QueryRow(query, bd.StartDate, bd.EndDate, bd.Reason, bd.CreatedBy, bd.ExternalUID).
		Scan(&bd.ID, &bd.CreatedAt)
}

func (r *BlockedDateRepository) List() ([]db.BlockedDate, error) {
	query := `
		SELECT id, start_date, end_date, reason, created_by, external_uid, created_at
		FROM blocked_dates ORDER BY start_date ASC`
	return r.queryBlockedDates(query)
}

// FindOverlapping returns administrative blocks sharing at least one night
// with [start, end).
func (r *BlockedDateRepository) FindOverlapping(start, end time.Time) ([]db.BlockedDate, error) {
	query := `
		SELECT id, start_date, end_date, reason, created_by, external_uid, created_at
		FROM blocked_dates
		WHERE start_date < $2 AND end_date > $1
		ORDER BY start_date`
	return r.queryBlockedDates(query, start, end)
}

func (r *BlockedDateRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM blocked_dates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting blocked date: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("blocked date %d: %w", id, ErrNotFound)
	}
	return nil
}

// ExistsExternalUID reports whether a synced calendar event was already imported.
func (r *BlockedDateRepository) ExistsExternalUID(uid string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM blocked_dates WHERE external_uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking external uid: %w", err)
	}
	return exists, nil
}

// DeleteExpiredSynced removes calendar-synced blocks whose end date passed
// before the cutoff. Manually created blocks are never touched.
func (r *BlockedDateRepository) DeleteExpiredSynced(before time.Time) (int64, error) {
	res, err := r.DB.Exec(`
		DELETE FROM blocked_dates
		WHERE created_by LIKE 'sync_%' AND end_date < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired synced blocks: %w", err)
	}
	return res.RowsAffected()
}

func (r *BlockedDateRepository) queryBlockedDates(query string, args ...interface{}) ([]db.BlockedDate, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying blocked dates: %w", err)
	}
	defer rows.Close()

	var blocks []db.BlockedDate
	for rows.Next() {
		var bd db.BlockedDate
		if err := rows.Scan(&bd.ID, &bd.StartDate, &bd.EndDate, &bd.Reason, &bd.CreatedBy, &bd.ExternalUID, &bd.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning blocked date: %w", err)
		}
		blocks = append(blocks, bd)
	}
	return blocks, rows.Err()
}
