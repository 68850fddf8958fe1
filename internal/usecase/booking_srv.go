package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/notifier"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Guest endpoints
	CreateBooking(ctx context.Context, guestID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, guestID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, guestID, bookingID string) error

	// Staff / admin endpoints
	CreateWalkIn(ctx context.Context, req *request.CreateWalkInRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ApproveBooking(ctx context.Context, bookingID string, req *request.ApproveBookingRequest) (*response.BookingResponse, error)
	RejectBooking(ctx context.Context, bookingID string, req *request.RejectBookingRequest) error
	RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*response.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ExtendStay(ctx context.Context, bookingID string, req *request.ExtendStayRequest) (*response.BookingResponse, error)
	CheckOut(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	events notifier.EventPublisher
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, events notifier.EventPublisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "booking")),
	}
}

// CreateBooking takes an online reservation request. The booking lands in
// pending with no physical room bound; a staff approval picks the room later.
func (s *bookingService) CreateBooking(ctx context.Context, guestID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, validationErrorf("invalid guest ID format %s", guestID)
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", req.RoomTypeID)
	}

	checkIn, checkOut, err := parseStayRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	desiredCheckIn, err := parseDesiredCheckIn(req.DesiredCheckIn)
	if err != nil {
		return nil, err
	}

	discount, err := parseDiscountType(req.DiscountType)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.GuestProfile.FindByID(ctx, guestUUID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, notFound("guest profile", guestID)
	}
	if !profile.Complete() {
		return nil, validationErrorf("guest profile is incomplete: contact details and an ID document are required before booking")
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, notFound("room type", req.RoomTypeID)
	}
	if !roomType.IsBookable {
		return nil, &AvailabilityError{Reason: "room type is not open for booking"}
	}
	if req.GuestCount > roomType.MaxGuests {
		return nil, validationErrorf("guest count %d exceeds room capacity %d", req.GuestCount, roomType.MaxGuests)
	}

	if err := s.ensureTypeAvailable(ctx, roomTypeID, checkIn, checkOut); err != nil {
		return nil, err
	}

	quote, err := ComputeQuote(roomType, checkIn, checkOut, desiredCheckIn, discount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReferenceCode:   utils.GenerateReferenceCode(),
		RoomTypeID:      roomTypeID,
		GuestID:         &guestUUID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		DesiredCheckIn:  desiredCheckIn,
		GuestCount:      req.GuestCount,
		Status:          entity.BookingStatusPending,
		TotalPrice:      quote.TotalPrice,
		EarlyCheckInFee: quote.EarlyCheckInFee,
		DiscountType:    discount,
		DiscountAmount:  quote.DiscountAmount,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("guest_id", guestID),
			zap.String("room_type_id", req.RoomTypeID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference_code", booking.ReferenceCode),
		zap.Float64("total_price", booking.TotalPrice),
	)
	s.publishBookingEvent(notifier.EventBookingCreated, booking)

	resp := response.BookingToResponse(booking)
	resp.RoomTypeName = roomType.Name
	return &resp, nil
}

// CreateWalkIn registers a desk booking against an explicitly chosen room.
// The booking enters approved directly; the room claim is re-verified inside
// the insert transaction.
func (s *bookingService) CreateWalkIn(ctx context.Context, req *request.CreateWalkInRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create walk-in validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, validationErrorf("invalid room ID format %s", req.RoomID)
	}

	checkIn, checkOut, err := parseStayRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	desiredCheckIn, err := parseDesiredCheckIn(req.DesiredCheckIn)
	if err != nil {
		return nil, err
	}

	discount, err := parseDiscountType(req.DiscountType)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, notFound("room", req.RoomID)
	}
	if room.Maintenance {
		return nil, &AvailabilityError{Reason: "room is under maintenance"}
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, room.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, notFound("room type", room.RoomTypeID.String())
	}
	if req.GuestCount > roomType.MaxGuests {
		return nil, validationErrorf("guest count %d exceeds room capacity %d", req.GuestCount, roomType.MaxGuests)
	}

	// Advisory pre-check for a friendly error; the transaction is the
	// authority.
	overlapping, err := s.repo.Booking.FindActiveOverlappingByRoom(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, &AvailabilityError{Reason: "room is already booked for part of the range"}
	}

	quote, err := ComputeQuote(roomType, checkIn, checkOut, desiredCheckIn, discount)
	if err != nil {
		return nil, err
	}

	if req.AmountPaid > quote.TotalPrice {
		return nil, validationErrorf("payment %.2f exceeds total price %.2f", req.AmountPaid, quote.TotalPrice)
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReferenceCode:   utils.GenerateReferenceCode(),
		RoomTypeID:      room.RoomTypeID,
		RoomID:          &roomID,
		WalkInName:      &req.GuestName,
		WalkInEmail:     req.GuestEmail,
		WalkInPhone:     &req.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		DesiredCheckIn:  desiredCheckIn,
		GuestCount:      req.GuestCount,
		Status:          entity.BookingStatusApproved,
		TotalPrice:      quote.TotalPrice,
		AmountPaid:      req.AmountPaid,
		EarlyCheckInFee: quote.EarlyCheckInFee,
		DiscountType:    discount,
		DiscountAmount:  quote.DiscountAmount,
		PaymentRef:      req.PaymentReference,
		IsWalkIn:        true,
	}

	if err := s.repo.Booking.CreateWithRoom(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrRoomConflict) {
			return nil, &ConflictError{Msg: "room was claimed by another booking, pick a different room"}
		}
		s.log.Error("Failed to create walk-in booking",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
		)
		return nil, err
	}

	s.log.Info("Walk-in booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference_code", booking.ReferenceCode),
		zap.String("room_number", room.RoomNumber),
	)
	s.publishBookingEvent(notifier.EventBookingCreated, booking)

	resp := response.BookingToResponse(booking)
	resp.RoomTypeName = roomType.Name
	resp.RoomNumber = room.RoomNumber
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, guestID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, validationErrorf("invalid guest ID format %s", guestID)
	}

	bookings, err := s.repo.Booking.FindByGuestID(ctx, guestUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByGuestID(ctx, guestUUID)
	if err != nil {
		return nil, err
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = response.BookingToResponse(b)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)

	if roomType, err := s.repo.RoomType.FindByID(ctx, booking.RoomTypeID); err == nil && roomType != nil {
		resp.RoomTypeName = roomType.Name
	}
	if booking.RoomID != nil {
		if room, err := s.repo.Room.FindByID(ctx, *booking.RoomID); err == nil && room != nil {
			resp.RoomNumber = room.RoomNumber
		}
	}

	return &resp, nil
}

// ApproveBooking binds a chosen room and moves the booking to approved. The
// room claim is re-verified under a row lock; losing the race surfaces as a
// ConflictError so staff can retry with another room.
func (s *bookingService) ApproveBooking(ctx context.Context, bookingID string, req *request.ApproveBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusApproved) {
		return nil, &StateTransitionError{From: booking.Status, To: entity.BookingStatusApproved, Op: "approve"}
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, validationErrorf("invalid room ID format %s", req.RoomID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, notFound("room", req.RoomID)
	}
	if room.RoomTypeID != booking.RoomTypeID {
		return nil, validationErrorf("room %s does not belong to the booked room type", room.RoomNumber)
	}
	if room.Maintenance {
		return nil, &AvailabilityError{Reason: "room is under maintenance"}
	}

	err = s.repo.Booking.AssignRoom(ctx, booking.ID, roomID, booking.CheckInDate, booking.CheckOutDate, entity.BookingStatusApproved)
	if err != nil {
		if errors.Is(err, repository.ErrRoomConflict) {
			return nil, &ConflictError{Msg: "room was claimed by another booking, pick a different room"}
		}
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, &ConflictError{Msg: "booking is no longer pending, reload and retry"}
		}
		return nil, err
	}

	booking.RoomID = &roomID
	booking.Status = entity.BookingStatusApproved

	s.log.Info("Booking approved",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_number", room.RoomNumber),
	)
	s.publishBookingEvent(notifier.EventBookingApproved, booking)

	resp := response.BookingToResponse(booking)
	resp.RoomNumber = room.RoomNumber
	return &resp, nil
}

func (s *bookingService) RejectBooking(ctx context.Context, bookingID string, req *request.RejectBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusRejected) {
		return &StateTransitionError{From: booking.Status, To: entity.BookingStatusRejected, Op: "reject"}
	}

	if err := s.repo.Booking.SetRejected(ctx, booking.ID, req.Reason); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return &ConflictError{Msg: "booking is no longer pending, reload and retry"}
		}
		return err
	}

	booking.Status = entity.BookingStatusRejected
	booking.RejectReason = &req.Reason

	s.log.Info("Booking rejected",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reason", req.Reason),
	)
	s.publishBookingEvent(notifier.EventBookingRejected, booking)

	return nil
}

// CancelBooking lets a guest withdraw their own pending booking. Approved
// bookings are an administrative exception and are not cancellable here.
func (s *bookingService) CancelBooking(ctx context.Context, guestID, bookingID string) error {
	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return validationErrorf("invalid guest ID format %s", guestID)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.GuestID == nil || *booking.GuestID != guestUUID {
		// Do not reveal other guests' bookings.
		return notFound("booking", bookingID)
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
		return &StateTransitionError{From: booking.Status, To: entity.BookingStatusCancelled, Op: "cancel"}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, entity.BookingStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return &ConflictError{Msg: "booking is no longer pending, reload and retry"}
		}
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("guest_id", guestID),
	)

	return nil
}

// RecordPayment books a payment against the stay. Partial payments are fine
// and the top-level status never changes on payment.
func (s *bookingService) RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.IsActive() {
		return nil, &StateTransitionError{From: booking.Status, Op: "record a payment for"}
	}

	outstanding := booking.TotalPrice - booking.AmountPaid
	if req.Amount > outstanding {
		return nil, validationErrorf("payment %.2f exceeds outstanding balance %.2f", req.Amount, outstanding)
	}

	if err := s.repo.Booking.RecordPayment(ctx, booking.ID, req.Amount, req.PaymentReference); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, &ConflictError{Msg: "booking was cancelled or rejected concurrently"}
		}
		return nil, err
	}

	booking.AmountPaid += req.Amount
	booking.PaymentRef = &req.PaymentReference

	s.log.Info("Payment recorded",
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", req.Amount),
		zap.Bool("fully_paid", booking.IsFullyPaid()),
	)
	s.publishBookingEvent(notifier.EventBookingPaid, booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CheckIn(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusCheckedIn) {
		return nil, &StateTransitionError{From: booking.Status, To: entity.BookingStatusCheckedIn, Op: "check in"}
	}
	if booking.RoomID == nil {
		return nil, validationErrorf("booking %s has no room bound", booking.ReferenceCode)
	}

	now := time.Now()
	if err := s.repo.Booking.MarkCheckedIn(ctx, booking.ID, now); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, &ConflictError{Msg: "booking is no longer approved, reload and retry"}
		}
		return nil, err
	}

	booking.Status = entity.BookingStatusCheckedIn
	booking.ActualCheckIn = &now

	s.log.Info("Guest checked in",
		zap.String("booking_id", booking.ID.String()),
		zap.Time("actual_check_in", now),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// ExtendStay pushes the checkout date forward. Only the added interval
// [old checkout, new checkout) is re-checked on the bound room; the price is
// recomputed for the new night count with the original discount preserved.
func (s *bookingService) ExtendStay(ctx context.Context, bookingID string, req *request.ExtendStayRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusApproved && booking.Status != entity.BookingStatusCheckedIn {
		return nil, &StateTransitionError{From: booking.Status, Op: "extend"}
	}
	if booking.RoomID == nil {
		return nil, validationErrorf("booking %s has no room bound", booking.ReferenceCode)
	}

	newCheckOut, err := utils.ParseDate(req.NewCheckOutDate)
	if err != nil {
		return nil, validationErrorf("invalid check-out date %s", req.NewCheckOutDate)
	}
	if !newCheckOut.After(booking.CheckOutDate) {
		return nil, validationErrorf("new check-out date must be after the current check-out date %s", utils.FormatDate(booking.CheckOutDate))
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, booking.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, notFound("room type", booking.RoomTypeID.String())
	}

	quote, err := ComputeQuote(roomType, booking.CheckInDate, newCheckOut, booking.DesiredCheckIn, booking.DiscountType)
	if err != nil {
		return nil, err
	}

	err = s.repo.Booking.ExtendStay(ctx, booking.ID, *booking.RoomID, booking.CheckOutDate, newCheckOut, quote.TotalPrice, quote.DiscountAmount)
	if err != nil {
		if errors.Is(err, repository.ErrRoomConflict) {
			return nil, &ConflictError{Msg: "room is already booked beyond the current check-out date"}
		}
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, &ConflictError{Msg: "booking left its extendable state, reload and retry"}
		}
		return nil, err
	}

	booking.CheckOutDate = newCheckOut
	booking.TotalPrice = quote.TotalPrice
	booking.DiscountAmount = quote.DiscountAmount

	s.log.Info("Stay extended",
		zap.String("booking_id", booking.ID.String()),
		zap.String("new_check_out", utils.FormatDate(newCheckOut)),
		zap.Float64("total_price", booking.TotalPrice),
	)
	s.publishBookingEvent(notifier.EventBookingExtended, booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CheckOut(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusCheckedOut) {
		return nil, &StateTransitionError{From: booking.Status, To: entity.BookingStatusCheckedOut, Op: "check out"}
	}

	if !booking.IsFullyPaid() {
		s.log.Warn("Checking out with outstanding balance",
			zap.String("booking_id", booking.ID.String()),
			zap.Float64("outstanding", booking.TotalPrice-booking.AmountPaid),
		)
	}

	now := time.Now()
	if err := s.repo.Booking.MarkCheckedOut(ctx, booking.ID, now); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, &ConflictError{Msg: "booking is no longer checked in, reload and retry"}
		}
		return nil, err
	}

	booking.Status = entity.BookingStatusCheckedOut
	booking.ActualCheckOut = &now

	s.log.Info("Guest checked out",
		zap.String("booking_id", booking.ID.String()),
		zap.Time("actual_check_out", now),
	)
	s.publishBookingEvent(notifier.EventBookingCheckedOut, booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// ensureTypeAvailable runs the day-granular capacity check and converts any
// shortage into an AvailabilityError naming the fully booked days.
func (s *bookingService) ensureTypeAvailable(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) error {
	capacity, err := s.repo.Room.CountUsableByType(ctx, roomTypeID)
	if err != nil {
		return err
	}
	if capacity == 0 {
		return &AvailabilityError{Reason: "no usable rooms of this type"}
	}

	overlapping, err := s.repo.Booking.FindActiveOverlappingByType(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return err
	}

	if conflicts := fullyBookedDays(overlapping, capacity, checkIn, checkOut); len(conflicts) > 0 {
		return &AvailabilityError{
			Reason:        "room type is fully booked on part of the range",
			ConflictDates: conflicts,
		}
	}

	return nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, validationErrorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("booking", bookingID)
	}

	return booking, nil
}

func (s *bookingService) publishBookingEvent(event string, b *entity.Booking) {
	s.events.Publish(event, map[string]any{
		"booking_id":     b.ID.String(),
		"reference_code": b.ReferenceCode,
		"room_type_id":   b.RoomTypeID.String(),
		"status":         string(b.Status),
		"check_in_date":  utils.FormatDate(b.CheckInDate),
		"check_out_date": utils.FormatDate(b.CheckOutDate),
		"total_price":    b.TotalPrice,
		"amount_paid":    b.AmountPaid,
	})
}

func parseDesiredCheckIn(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, validationErrorf("invalid desired check-in timestamp %s, expected RFC3339", *raw)
	}
	return &t, nil
}

func parseDiscountType(raw string) (entity.DiscountType, error) {
	if raw == "" {
		return entity.DiscountNone, nil
	}
	d := entity.DiscountType(raw)
	if !d.Valid() {
		return "", validationErrorf("unknown discount type %q", raw)
	}
	return d, nil
}
