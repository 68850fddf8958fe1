package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrRoomConflict is returned when the commit-time overlap recheck finds the
// target room claimed by another booking for an intersecting interval.
var ErrRoomConflict = errors.New("room already booked for an overlapping interval")

// ErrStaleStatus is returned when a transition's status precondition no longer
// holds at write time: the booking moved concurrently between the caller's
// read and the UPDATE.
var ErrStaleStatus = errors.New("booking status changed concurrently")

const bookingColumns = `id, reference_code, room_type_id, room_id, guest_id,
	walk_in_name, walk_in_email, walk_in_phone,
	check_in_date, check_out_date, desired_check_in, actual_check_in, actual_check_out,
	guest_count, status, total_price, amount_paid, early_check_in_fee,
	discount_type, discount_amount, payment_reference, rejection_reason, is_walk_in,
	created_at, updated_at`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReferenceCode(ctx context.Context, referenceCode string) (*entity.Booking, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByGuestID(ctx context.Context, guestID uuid.UUID) (int64, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)

	// Business queries
	FindActiveOverlappingByType(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Booking, error)
	FindActiveOverlappingByRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Booking, error)

	// Transitions. Every UPDATE re-verifies the source status in SQL and
	// returns ErrStaleStatus when the booking moved concurrently, so a read
	// made before the write is never trusted.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to entity.BookingStatus) error
	SetRejected(ctx context.Context, bookingID uuid.UUID, reason string) error
	RecordPayment(ctx context.Context, bookingID uuid.UUID, amount float64, paymentRef string) error
	MarkCheckedIn(ctx context.Context, bookingID uuid.UUID, at time.Time) error
	MarkCheckedOut(ctx context.Context, bookingID uuid.UUID, at time.Time) error

	// Atomic check-then-assign operations. Each runs in a single transaction
	// that locks the room row, re-runs the overlap test and only then writes.
	// They return ErrRoomConflict when the room was claimed concurrently.
	AssignRoom(ctx context.Context, bookingID, roomID uuid.UUID, checkIn, checkOut time.Time, status entity.BookingStatus) error
	CreateWithRoom(ctx context.Context, booking *entity.Booking) error
	ExtendStay(ctx context.Context, bookingID, roomID uuid.UUID, oldCheckOut, newCheckOut time.Time, totalPrice, discountAmount float64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`

	_, err := r.db.Exec(ctx, query, bookingArgs(booking)...)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference_code", booking.ReferenceCode),
		)
		return fmt.Errorf("create booking %s: %w", booking.ReferenceCode, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBookingRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByReferenceCode(ctx context.Context, referenceCode string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference_code = $1`

	booking, err := scanBookingRow(r.db.QueryRow(ctx, query, referenceCode))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference code",
			zap.Error(err),
			zap.String("reference_code", referenceCode),
		)
		return nil, fmt.Errorf("find booking by reference code %s: %w", referenceCode, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE guest_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, guestID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return nil, fmt.Errorf("find bookings by guest ID %s: %w", guestID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) CountByGuestID(ctx context.Context, guestID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE guest_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, guestID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return 0, fmt.Errorf("count bookings by guest ID %s: %w", guestID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings by status %s: %w", string(status), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

// FindActiveOverlappingByType returns non-cancelled, non-rejected bookings of
// a room type whose interval intersects [checkIn, checkOut). Feeds the
// day-granular capacity count.
func (r *bookingRepository) FindActiveOverlappingByType(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_type_id = $1
		  AND status NOT IN ('cancelled', 'rejected')
		  AND check_in_date < $3
		  AND $2 < check_out_date
		ORDER BY check_in_date
	`

	rows, err := r.db.Query(ctx, query, roomTypeID, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find overlapping bookings by type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find overlapping bookings for type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) FindActiveOverlappingByRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1
		  AND status NOT IN ('cancelled', 'rejected')
		  AND check_in_date < $3
		  AND $2 < check_out_date
		ORDER BY check_in_date
	`

	rows, err := r.db.Query(ctx, query, roomID, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find overlapping bookings by room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find overlapping bookings for room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, bookingID, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(to)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

func (r *bookingRepository) SetRejected(ctx context.Context, bookingID uuid.UUID, reason string) error {
	query := `
		UPDATE bookings
		SET status = 'rejected', rejection_reason = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, bookingID, reason)
	if err != nil {
		r.log.Error("Failed to reject booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("reject booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

func (r *bookingRepository) RecordPayment(ctx context.Context, bookingID uuid.UUID, amount float64, paymentRef string) error {
	query := `
		UPDATE bookings
		SET amount_paid = amount_paid + $2, payment_reference = $3, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('cancelled', 'rejected')
	`

	result, err := r.db.Exec(ctx, query, bookingID, amount, paymentRef)
	if err != nil {
		r.log.Error("Failed to record payment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("record payment for booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

func (r *bookingRepository) MarkCheckedIn(ctx context.Context, bookingID uuid.UUID, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'checked_in', actual_check_in = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'approved'
	`

	result, err := r.db.Exec(ctx, query, bookingID, at)
	if err != nil {
		r.log.Error("Failed to mark booking checked in",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("mark booking %s checked in: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

func (r *bookingRepository) MarkCheckedOut(ctx context.Context, bookingID uuid.UUID, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'checked_out', actual_check_out = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'checked_in'
	`

	result, err := r.db.Exec(ctx, query, bookingID, at)
	if err != nil {
		r.log.Error("Failed to mark booking checked out",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("mark booking %s checked out: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

// AssignRoom binds a physical room to a booking inside one transaction. The
// room row is locked FOR UPDATE so concurrent assignments for the same room
// serialize, then the overlap test is re-run before writing. The write only
// lands on a still-pending booking; a booking that moved (cancelled, rejected)
// since the caller's read surfaces as ErrStaleStatus.
func (r *bookingRepository) AssignRoom(ctx context.Context, bookingID, roomID uuid.UUID, checkIn, checkOut time.Time, status entity.BookingStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assign room tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockRoomRow(ctx, tx, roomID); err != nil {
		return err
	}

	clear, err := roomIntervalClear(ctx, tx, roomID, bookingID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if !clear {
		r.log.Warn("Room claimed concurrently during assignment",
			zap.String("booking_id", bookingID.String()),
			zap.String("room_id", roomID.String()),
		)
		return ErrRoomConflict
	}

	query := `
		UPDATE bookings
		SET room_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	result, err := tx.Exec(ctx, query, bookingID, roomID, status)
	if err != nil {
		return fmt.Errorf("assign room %s to booking %s: %w", roomID.String(), bookingID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assign room tx: %w", err)
	}

	return nil
}

// CreateWithRoom inserts a walk-in booking with its room already bound, using
// the same lock-recheck-write discipline as AssignRoom.
func (r *bookingRepository) CreateWithRoom(ctx context.Context, booking *entity.Booking) error {
	if booking.RoomID == nil {
		return fmt.Errorf("booking %s has no room bound", booking.ReferenceCode)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin walk-in tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockRoomRow(ctx, tx, *booking.RoomID); err != nil {
		return err
	}

	clear, err := roomIntervalClear(ctx, tx, *booking.RoomID, booking.ID, booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		return err
	}
	if !clear {
		r.log.Warn("Room claimed concurrently during walk-in create",
			zap.String("room_id", booking.RoomID.String()),
		)
		return ErrRoomConflict
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`
	if _, err := tx.Exec(ctx, query, bookingArgs(booking)...); err != nil {
		return fmt.Errorf("create walk-in booking %s: %w", booking.ReferenceCode, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit walk-in tx: %w", err)
	}

	return nil
}

// ExtendStay moves the checkout date forward after atomically rechecking only
// the delta interval [oldCheckOut, newCheckOut) on the bound room.
func (r *bookingRepository) ExtendStay(ctx context.Context, bookingID, roomID uuid.UUID, oldCheckOut, newCheckOut time.Time, totalPrice, discountAmount float64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin extend tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockRoomRow(ctx, tx, roomID); err != nil {
		return err
	}

	clear, err := roomIntervalClear(ctx, tx, roomID, bookingID, oldCheckOut, newCheckOut)
	if err != nil {
		return err
	}
	if !clear {
		r.log.Warn("Extension window claimed concurrently",
			zap.String("booking_id", bookingID.String()),
			zap.String("room_id", roomID.String()),
		)
		return ErrRoomConflict
	}

	query := `
		UPDATE bookings
		SET check_out_date = $2, total_price = $3, discount_amount = $4, updated_at = NOW()
		WHERE id = $1 AND status IN ('approved', 'checked_in')
	`
	result, err := tx.Exec(ctx, query, bookingID, newCheckOut, totalPrice, discountAmount)
	if err != nil {
		return fmt.Errorf("extend booking %s: %w", bookingID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit extend tx: %w", err)
	}

	return nil
}

// lockRoomRow serializes all check-then-assign work touching one room.
func lockRoomRow(ctx context.Context, tx pgx.Tx, roomID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT id FROM rooms WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`,
		roomID,
	).Scan(&id)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("room %s not found", roomID.String())
	}
	if err != nil {
		return fmt.Errorf("lock room %s: %w", roomID.String(), err)
	}
	return nil
}

// roomIntervalClear re-runs the half-open overlap test for a room under the
// row lock, ignoring the booking being written.
func roomIntervalClear(ctx context.Context, tx pgx.Tx, roomID, excludeBookingID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND id <> $2
		  AND status NOT IN ('cancelled', 'rejected')
		  AND check_in_date < $4
		  AND $3 < check_out_date
	`, roomID, excludeBookingID, checkIn, checkOut).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("recheck overlap for room %s: %w", roomID.String(), err)
	}
	return count == 0, nil
}

func bookingArgs(b *entity.Booking) []any {
	return []any{
		b.ID,
		b.ReferenceCode,
		b.RoomTypeID,
		b.RoomID,
		b.GuestID,
		b.WalkInName,
		b.WalkInEmail,
		b.WalkInPhone,
		b.CheckInDate,
		b.CheckOutDate,
		b.DesiredCheckIn,
		b.ActualCheckIn,
		b.ActualCheckOut,
		b.GuestCount,
		b.Status,
		b.TotalPrice,
		b.AmountPaid,
		b.EarlyCheckInFee,
		b.DiscountType,
		b.DiscountAmount,
		b.PaymentRef,
		b.RejectReason,
		b.IsWalkIn,
		b.CreatedAt,
		b.UpdatedAt,
	}
}

func scanBookingRow(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.ReferenceCode,
		&b.RoomTypeID,
		&b.RoomID,
		&b.GuestID,
		&b.WalkInName,
		&b.WalkInEmail,
		&b.WalkInPhone,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.DesiredCheckIn,
		&b.ActualCheckIn,
		&b.ActualCheckOut,
		&b.GuestCount,
		&b.Status,
		&b.TotalPrice,
		&b.AmountPaid,
		&b.EarlyCheckInFee,
		&b.DiscountType,
		&b.DiscountAmount,
		&b.PaymentRef,
		&b.RejectReason,
		&b.IsWalkIn,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
