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

type RoomTypeService interface {
	ListRoomTypes(ctx context.Context, bookableOnly bool) ([]response.RoomTypeResponse, error)
	GetRoomTypeByID(ctx context.Context, roomTypeID string) (*response.RoomTypeDetailResponse, error)

	// Admin endpoints
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	UpdateRoomType(ctx context.Context, roomTypeID string, req *request.UpdateRoomTypeRequest) (*response.RoomTypeResponse, error)
	DeleteRoomType(ctx context.Context, roomTypeID string) error
}

type roomTypeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomTypeService(repo *repository.Repository, log *zap.Logger) RoomTypeService {
	return &roomTypeService{
		repo: repo,
		log:  log.With(zap.String("service", "room_type")),
	}
}

func (s *roomTypeService) ListRoomTypes(ctx context.Context, bookableOnly bool) ([]response.RoomTypeResponse, error) {
	roomTypes, err := s.repo.RoomType.FindAll(ctx, bookableOnly)
	if err != nil {
		return nil, err
	}

	out := make([]response.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		out[i] = response.RoomTypeToResponse(rt)
	}

	return out, nil
}

func (s *roomTypeService) GetRoomTypeByID(ctx context.Context, roomTypeID string) (*response.RoomTypeDetailResponse, error) {
	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	average, count, err := s.repo.Rating.GetRoomTypeStats(ctx, roomType.ID)
	if err != nil {
		return nil, err
	}

	return &response.RoomTypeDetailResponse{
		RoomTypeResponse: response.RoomTypeToResponse(roomType),
		RatingAverage:    average,
		RatingCount:      count,
	}, nil
}

func (s *roomTypeService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room type validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		NightlyRate: req.NightlyRate,
		MaxGuests:   req.MaxGuests,
		Amenities:   entity.NormalizeAmenities(req.Amenities),
		IsBookable:  true,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		s.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, err
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("name", roomType.Name),
	)

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomTypeService) UpdateRoomType(ctx context.Context, roomTypeID string, req *request.UpdateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		roomType.Name = *req.Name
	}
	if req.Description != nil {
		roomType.Description = req.Description
	}
	if req.NightlyRate != nil {
		roomType.NightlyRate = *req.NightlyRate
	}
	if req.MaxGuests != nil {
		roomType.MaxGuests = *req.MaxGuests
	}
	if req.Amenities != nil {
		roomType.Amenities = entity.NormalizeAmenities(req.Amenities)
	}
	if req.IsBookable != nil {
		roomType.IsBookable = *req.IsBookable
	}
	if req.ImageURL != nil {
		roomType.ImageURL = req.ImageURL
	}
	roomType.UpdatedAt = time.Now()

	if err := s.repo.RoomType.Update(ctx, roomType); err != nil {
		return nil, err
	}

	s.log.Info("Room type updated", zap.String("room_type_id", roomType.ID.String()))

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

// DeleteRoomType soft deletes the catalog entry. Existing bookings keep their
// room_type_id; only new bookings are blocked.
func (s *roomTypeService) DeleteRoomType(ctx context.Context, roomTypeID string) error {
	roomType, err := s.findRoomType(ctx, roomTypeID)
	if err != nil {
		return err
	}

	return s.repo.RoomType.Delete(ctx, roomType.ID)
}

func (s *roomTypeService) findRoomType(ctx context.Context, roomTypeID string) (*entity.RoomType, error) {
	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", roomTypeID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, notFound("room type", roomTypeID)
	}

	return roomType, nil
}
