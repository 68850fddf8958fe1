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

type RatingService interface {
	RateBooking(ctx context.Context, guestID, bookingID string, req *request.CreateRatingRequest) (*response.RatingResponse, error)
	UpdateRating(ctx context.Context, guestID, ratingID string, req *request.CreateRatingRequest) (*response.RatingResponse, error)
	GetRoomTypeRatings(ctx context.Context, roomTypeID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RatingResponse], error)
	GetRoomTypeStats(ctx context.Context, roomTypeID string) (*response.RatingStatsResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

// RateBooking attaches a rating to a checked-out booking. One rating per
// booking; a repeat call by the same guest edits the existing one.
func (s *ratingService) RateBooking(ctx context.Context, guestID, bookingID string, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rate booking validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, validationErrorf("invalid guest ID format %s", guestID)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, validationErrorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("booking", bookingID)
	}
	if booking.GuestID == nil || *booking.GuestID != guestUUID {
		return nil, notFound("booking", bookingID)
	}
	if booking.Status != entity.BookingStatusCheckedOut {
		return nil, &StateTransitionError{From: booking.Status, Op: "rate"}
	}

	existing, err := s.repo.Rating.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Rating = req.Rating
		existing.Comment = req.Comment
		existing.UpdatedAt = time.Now()

		if err := s.repo.Rating.Update(ctx, existing); err != nil {
			return nil, err
		}

		s.log.Info("Rating updated",
			zap.String("rating_id", existing.ID.String()),
			zap.Int("rating", existing.Rating),
		)

		resp := response.RatingToResponse(existing)
		return &resp, nil
	}

	now := time.Now()
	rating := &entity.Rating{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:  bookingUUID,
		RoomTypeID: booking.RoomTypeID,
		GuestID:    guestUUID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	s.log.Info("Rating created",
		zap.String("rating_id", rating.ID.String()),
		zap.Int("rating", rating.Rating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

// UpdateRating edits an existing rating in place. Only the guest who wrote it
// may edit; anyone else sees not found.
func (s *ratingService) UpdateRating(ctx context.Context, guestID, ratingID string, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rating validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, validationErrorf("invalid guest ID format %s", guestID)
	}

	ratingUUID, err := uuid.Parse(ratingID)
	if err != nil {
		return nil, validationErrorf("invalid rating ID format %s", ratingID)
	}

	rating, err := s.repo.Rating.FindByID(ctx, ratingUUID)
	if err != nil {
		return nil, err
	}
	if rating == nil || rating.GuestID != guestUUID {
		return nil, notFound("rating", ratingID)
	}

	rating.Rating = req.Rating
	rating.Comment = req.Comment
	rating.UpdatedAt = time.Now()

	if err := s.repo.Rating.Update(ctx, rating); err != nil {
		return nil, err
	}

	s.log.Info("Rating updated",
		zap.String("rating_id", rating.ID.String()),
		zap.Int("rating", rating.Rating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) GetRoomTypeRatings(ctx context.Context, roomTypeID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RatingResponse], error) {
	typeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", roomTypeID)
	}

	ratings, err := s.repo.Rating.FindByRoomTypeID(ctx, typeUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Rating.CountByRoomTypeID(ctx, typeUUID)
	if err != nil {
		return nil, err
	}

	items := make([]response.RatingResponse, len(ratings))
	for i, r := range ratings {
		items[i] = response.RatingToResponse(r)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *ratingService) GetRoomTypeStats(ctx context.Context, roomTypeID string) (*response.RatingStatsResponse, error) {
	typeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", roomTypeID)
	}

	average, count, err := s.repo.Rating.GetRoomTypeStats(ctx, typeUUID)
	if err != nil {
		return nil, err
	}

	return &response.RatingStatsResponse{
		RoomTypeID: roomTypeID,
		Average:    average,
		Count:      count,
	}, nil
}
