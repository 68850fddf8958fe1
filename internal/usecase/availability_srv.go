package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

// CheckAvailability answers whether a room type can host a stay. It is
// read-only: a positive answer is advisory and every write path re-checks
// inside its own transaction.
func (s *availabilityService) CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check availability validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", req.RoomTypeID)
	}

	checkIn, checkOut, err := parseStayRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, notFound("room type", req.RoomTypeID)
	}

	if !roomType.IsBookable {
		return unavailable("room type is not open for booking"), nil
	}
	if req.GuestCount > roomType.MaxGuests {
		return unavailable("guest count exceeds room capacity"), nil
	}

	capacity, err := s.repo.Room.CountUsableByType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if capacity == 0 {
		return unavailable("no usable rooms of this type"), nil
	}

	overlapping, err := s.repo.Booking.FindActiveOverlappingByType(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	conflicts := fullyBookedDays(overlapping, capacity, checkIn, checkOut)
	if len(conflicts) > 0 {
		resp := unavailable("room type is fully booked on part of the range")
		resp.ConflictDates = formatDates(conflicts)
		return resp, nil
	}

	return &response.AvailabilityResponse{Available: true}, nil
}

// fullyBookedDays walks each day of the half-open stay range and reports the
// days where active bookings already consume every usable room. Capacity is
// checked per day, not per range, so a one-night gap in a long booking wall
// still blocks nothing else.
func fullyBookedDays(bookings []*entity.Booking, capacity int64, checkIn, checkOut time.Time) []time.Time {
	var conflicts []time.Time
	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		var count int64
		for _, b := range bookings {
			if b.Status.IsActive() && b.Covers(day) {
				count++
			}
		}
		if count >= capacity {
			conflicts = append(conflicts, day)
		}
	}
	return conflicts
}

// parseStayRange parses and orders a check-in/check-out date pair.
func parseStayRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, validationErrorf("invalid check-in date %s", checkInStr)
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, validationErrorf("invalid check-out date %s", checkOutStr)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, validationErrorf("check-out date must be after check-in date")
	}
	return checkIn, checkOut, nil
}

func unavailable(reason string) *response.AvailabilityResponse {
	return &response.AvailabilityResponse{Available: false, Reason: reason}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = utils.FormatDate(d)
	}
	return out
}
