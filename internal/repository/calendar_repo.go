package repository

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"vincanto/internal/db"
	"vincanto/internal/entities"
)

type CalendarRepository struct {
	DB *sql.DB
}

func NewCalendarRepository(database *sql.DB) *CalendarRepository {
	return &CalendarRepository{DB: database}
}

const calendarColumns = `id, name, platform, url, active, sync_status, last_sync, error_message, created_at, updated_at`

func scanCalendarFeed(row rowScanner, f *db.CalendarFeed) error {
	return row.Scan(&f.ID, &f.Name, &f.Platform, &f.URL, &f.Active, &f.SyncStatus,
		&f.LastSync, &f.ErrorMessage, &f.CreatedAt, &f.UpdatedAt)
}

func (r *CalendarRepository) List() ([]db.CalendarFeed, error) {
	rows, err := r.DB.Query(fmt.Sprintf(`SELECT %s FROM calendar_feeds ORDER BY name`, calendarColumns))
	if err != nil {
		return nil, fmt.Errorf("error querying calendar feeds: %w", err)
	}
	defer rows.Close()

	var feeds []db.CalendarFeed
	for rows.Next() {
		var f db.CalendarFeed
		if err := scanCalendarFeed(rows, &f); err != nil {
			return nil, fmt.Errorf("error scanning calendar feed: %w", err)
		}
		feeds = append(feeds, f)
	}
	return feeds, rows.Err()
}

// ListActive returns feeds eligible for synchronization.
func (r *CalendarRepository) ListActive() ([]db.CalendarFeed, error) {
	query := fmt.Sprintf(`SELECT %s FROM calendar_feeds WHERE active AND url <> '' ORDER BY name`, calendarColumns)
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying active calendar feeds: %w", err)
	}
	defer rows.Close()

	var feeds []db.CalendarFeed
	for rows.Next() {
		var f db.CalendarFeed
		if err := scanCalendarFeed(rows, &f); err != nil {
			return nil, fmt.Errorf("error scanning calendar feed: %w", err)
		}
		feeds = append(feeds, f)
	}
	return feeds, rows.Err()
}

func (r *CalendarRepository) GetByPlatform(platform string) (*db.CalendarFeed, error) {
	var f db.CalendarFeed
	query := fmt.Sprintf(`SELECT %s FROM calendar_feeds WHERE platform = $1`, calendarColumns)
	if err := scanCalendarFeed(r.DB.QueryRow(query, platform), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("calendar feed %q: %w", platform, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying calendar feed: %w", err)
	}
	return &f, nil
}

func (r *CalendarRepository) Create(f *db.CalendarFeed) error {
	query := `
		INSERT INTO calendar_feeds (name, platform, url, active, sync_status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id, sync_status, created_at, updated_at`
	return r.DB.QueryRow(query, f.Name, f.Platform, f.URL, f.Active).
		Scan(&f.ID, &f.SyncStatus, &f.CreatedAt, &f.UpdatedAt)
}

func (r *CalendarRepository) Update(id int, upd entities.CalendarFeedRequest) (*db.CalendarFeed, error) {
	builder := psql.Update("calendar_feeds")
	if upd.Name != "" {
		builder = builder.Set("name", upd.Name)
	}
	if upd.Platform != "" {
		builder = builder.Set("platform", upd.Platform)
	}
	if upd.URL != "" {
		builder = builder.Set("url", upd.URL)
	}
	if upd.Active != nil {
		builder = builder.Set("active", *upd.Active)
	}
	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + calendarColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building calendar update: %w", err)
	}

	var f db.CalendarFeed
	if err := scanCalendarFeed(r.DB.QueryRow(query, args...), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("calendar feed %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error updating calendar feed: %w", err)
	}
	return &f, nil
}

func (r *CalendarRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM calendar_feeds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting calendar feed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("calendar feed %d: %w", id, ErrNotFound)
	}
	return nil
}

// MarkSyncResult records the outcome of a sync run on the feed row.
func (r *CalendarRepository) MarkSyncResult(id int, status, errorMessage string) error {
	var errMsg interface{}
	if errorMessage != "" {
		errMsg = errorMessage
	}
	_, err := r.DB.Exec(`
		UPDATE calendar_feeds
		SET sync_status = $2, error_message = $3, last_sync = NOW(), updated_at = NOW()
		WHERE id = $1`, id, status, errMsg)
	if err != nil {
		return fmt.Errorf("error recording sync result: %w", err)
	}
	return nil
}
