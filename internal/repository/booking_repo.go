package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"vincanto/internal/db"
	"vincanto/internal/entities"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookingColumns = `id, reference_code, guest_name, guest_surname, guest_email, guest_phone,
	check_in_date, check_out_date, num_adults, num_children, children_ages, parking_option,
	base_price, parking_cost, cleaning_fee, tourist_tax, total_amount, deposit_amount,
	payment_amount, payment_method, payment_type, payment_status, booking_status,
	stripe_session_id, guest_message, admin_notes, created_at, updated_at, confirmed_at, cancelled_at`

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner, b *db.Booking) error {
	return row.Scan(
		&b.ID, &b.ReferenceCode, &b.GuestName, &b.GuestSurname, &b.GuestEmail, &b.GuestPhone,
		&b.CheckInDate, &b.CheckOutDate, &b.NumAdults, &b.NumChildren, &b.ChildrenAges, &b.ParkingOption,
		&b.BasePrice, &b.ParkingCost, &b.CleaningFee, &b.TouristTax, &b.TotalAmount, &b.DepositAmount,
		&b.PaymentAmount, &b.PaymentMethod, &b.PaymentType, &b.PaymentStatus, &b.BookingStatus,
		&b.StripeSessionID, &b.GuestMessage, &b.AdminNotes, &b.CreatedAt, &b.UpdatedAt, &b.ConfirmedAt, &b.CancelledAt,
	)
}

func (r *BookingRepository) Create(b *db.Booking) error {
	query := `
		INSERT INTO bookings
		(reference_code, guest_name, guest_surname, guest_email, guest_phone,
		 check_in_date, check_out_date, num_adults, num_children, children_ages, parking_option,
		 base_price, parking_cost, cleaning_fee, tourist_tax, total_amount, deposit_amount,
		 payment_amount, payment_method, payment_type, payment_status, booking_status,
		 stripe_session_id, guest_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		b.ReferenceCode, b.GuestName, b.GuestSurname, b.GuestEmail, b.GuestPhone,
		b.CheckInDate, b.CheckOutDate, b.NumAdults, b.NumChildren, b.ChildrenAges, b.ParkingOption,
		b.BasePrice, b.ParkingCost, b.CleaningFee, b.TouristTax, b.TotalAmount, b.DepositAmount,
		b.PaymentAmount, b.PaymentMethod, b.PaymentType, b.PaymentStatus, b.BookingStatus,
		b.StripeSessionID, b.GuestMessage,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) GetByID(id int) (*db.Booking, error) {
	var b db.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	if err := scanBooking(r.DB.QueryRow(query, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) GetByReference(code, email string) (*db.Booking, error) {
	var b db.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE reference_code = $1 AND guest_email = $2`, bookingColumns)
	if err := scanBooking(r.DB.QueryRow(query, code, email), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) GetByStripeSessionID(sessionID string) (*db.Booking, error) {
	var b db.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE stripe_session_id = $1`, bookingColumns)
	if err := scanBooking(r.DB.QueryRow(query, sessionID), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking for session %q: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &b, nil
}

// FindOverlapping returns confirmed and pending stays sharing at least one
// night with [start, end). Half-open: a stay checking out on start is free.
func (r *BookingRepository) FindOverlapping(start, end time.Time) ([]db.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE booking_status IN ('confirmed', 'pending')
		AND check_in_date < $2 AND check_out_date > $1
		ORDER BY check_in_date`, bookingColumns)
	rows, err := r.DB.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListFilters narrows the admin booking list. Zero values mean "no filter".
type ListFilters struct {
	Status        string
	PaymentStatus string
	FromDate      string
	ToDate        string
	Limit         int
	Offset        int
}

func (r *BookingRepository) List(f ListFilters) ([]db.Booking, int64, error) {
	builder := psql.Select(bookingColumns).From("bookings").OrderBy("created_at DESC")
	countBuilder := psql.Select("COUNT(*)").From("bookings")

	apply := func(b sq.SelectBuilder) sq.SelectBuilder {
		if f.Status != "" {
			b = b.Where(sq.Eq{"booking_status": f.Status})
		}
		if f.PaymentStatus != "" {
			b = b.Where(sq.Eq{"payment_status": f.PaymentStatus})
		}
		if f.FromDate != "" {
			b = b.Where(sq.GtOrEq{"check_in_date": f.FromDate})
		}
		if f.ToDate != "" {
			b = b.Where(sq.LtOrEq{"check_out_date": f.ToDate})
		}
		return b
	}
	builder = apply(builder)
	countBuilder = apply(countBuilder)

	if f.Limit > 0 {
		builder = builder.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		builder = builder.Offset(uint64(f.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building bookings query: %w", err)
	}
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count query: %w", err)
	}
	var total int64
	if err := r.DB.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return bookings, total, nil
}

// UpdateStatus applies a partial status update. Confirmation and cancellation
// stamp their timestamps.
func (r *BookingRepository) UpdateStatus(id int, upd entities.BookingStatusUpdate) (*db.Booking, error) {
	builder := psql.Update("bookings").Set("updated_at", sq.Expr("NOW()"))
	if upd.BookingStatus != "" {
		builder = builder.Set("booking_status", upd.BookingStatus)
		switch upd.BookingStatus {
		case "confirmed":
			builder = builder.Set("confirmed_at", sq.Expr("NOW()"))
		case "cancelled":
			builder = builder.Set("cancelled_at", sq.Expr("NOW()"))
		}
	}
	if upd.PaymentStatus != "" {
		builder = builder.Set("payment_status", upd.PaymentStatus)
	}
	if upd.AdminNotes != nil {
		builder = builder.Set("admin_notes", *upd.AdminNotes)
	}
	query, args, err := builder.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + bookingColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building status update: %w", err)
	}

	var b db.Booking
	if err := scanBooking(r.DB.QueryRow(query, args...), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error updating booking status: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatusBySessionID(sessionID, bookingStatus, paymentStatus string) error {
	query := `
		UPDATE bookings SET booking_status = $2, payment_status = $3, updated_at = NOW(),
			confirmed_at = CASE WHEN $2 = 'confirmed' THEN NOW() ELSE confirmed_at END,
			cancelled_at = CASE WHEN $2 = 'cancelled' THEN NOW() ELSE cancelled_at END
		WHERE stripe_session_id = $1`
	res, err := r.DB.Exec(query, sessionID, bookingStatus, paymentStatus)
	if err != nil {
		return fmt.Errorf("error updating booking by session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("booking for session %q: %w", sessionID, ErrNotFound)
	}
	return nil
}

func (r *BookingRepository) Stats() (entities.DashboardStats, error) {
	var s entities.DashboardStats
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE booking_status = 'confirmed'),
			COUNT(*) FILTER (WHERE booking_status = 'pending'),
			COUNT(*) FILTER (WHERE payment_status = 'paid'),
			COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0),
			COALESCE(SUM(payment_amount) FILTER (WHERE payment_status = 'paid'), 0)
		FROM bookings`
	err := r.DB.QueryRow(query).Scan(
		&s.TotalBookings, &s.ConfirmedBookings, &s.PendingBookings,
		&s.PaidBookings, &s.TotalRevenue, &s.CollectedRevenue,
	)
	if err != nil {
		return s, fmt.Errorf("error querying booking stats: %w", err)
	}
	return s, nil
}

func (r *BookingRepository) Recent(limit int) ([]db.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at DESC LIMIT $1`, bookingColumns)
	return r.queryBookings(query, limit)
}

// UpcomingArrivals returns confirmed stays checking in within the next days.
func (r *BookingRepository) UpcomingArrivals(days int) ([]db.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE booking_status = 'confirmed'
		AND check_in_date >= CURRENT_DATE
		AND check_in_date <= CURRENT_DATE + $1 * INTERVAL '1 day'
		ORDER BY check_in_date ASC`, bookingColumns)
	return r.queryBookings(query, days)
}

func (r *BookingRepository) queryBookings(query string, args ...interface{}) ([]db.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
