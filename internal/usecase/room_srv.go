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

type RoomService interface {
	ListRooms(ctx context.Context, roomTypeID string) ([]response.RoomResponse, error)
	ListAvailableRooms(ctx context.Context, roomTypeID, checkInDate, checkOutDate string) ([]response.RoomResponse, error)

	// Admin endpoints
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
	SetMaintenance(ctx context.Context, roomID string) error
	ClearMaintenance(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

// ListRooms returns every room of a type with its derived status. Status is
// never stored: the maintenance flag plus the booking covering today decide.
func (s *roomService) ListRooms(ctx context.Context, roomTypeID string) ([]response.RoomResponse, error) {
	typeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", roomTypeID)
	}

	rooms, err := s.repo.Room.FindByTypeID(ctx, typeUUID)
	if err != nil {
		return nil, err
	}

	today := utils.Today()
	occupiedIDs, err := s.repo.Room.FindOccupiedRoomIDs(ctx, typeUUID, today)
	if err != nil {
		return nil, err
	}

	occupied := make(map[uuid.UUID]bool, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = true
	}

	out := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		status := entity.DeriveRoomStatus(room.Maintenance, occupied[room.ID])
		out[i] = response.RoomToResponse(room, status)
	}

	return out, nil
}

// ListAvailableRooms returns assignable rooms of a type for a stay range,
// ordered by room number so the assignment preference is deterministic.
func (s *roomService) ListAvailableRooms(ctx context.Context, roomTypeID, checkInDate, checkOutDate string) ([]response.RoomResponse, error) {
	typeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", roomTypeID)
	}

	checkIn, checkOut, err := parseStayRange(checkInDate, checkOutDate)
	if err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindAvailableByType(ctx, typeUUID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	out := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = response.RoomToResponse(room, entity.RoomStatusAvailable)
	}

	return out, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	typeUUID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, validationErrorf("invalid room type ID format %s", req.RoomTypeID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, typeUUID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, notFound("room type", req.RoomTypeID)
	}

	existing, err := s.repo.Room.FindByRoomNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Msg: "room number " + req.RoomNumber + " already exists"}
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomTypeID: typeUUID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", req.RoomNumber),
		)
		return nil, err
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber),
	)

	resp := response.RoomToResponse(room, entity.RoomStatusAvailable)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationErrorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		existing, err := s.repo.Room.FindByRoomNumber(ctx, *req.RoomNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &ConflictError{Msg: "room number " + *req.RoomNumber + " already exists"}
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = req.Floor
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, err
	}

	occupied, err := s.repo.Room.HasActiveOccupant(ctx, room.ID, utils.Today())
	if err != nil {
		return nil, err
	}

	resp := response.RoomToResponse(room, entity.DeriveRoomStatus(room.Maintenance, occupied))
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return err
	}

	occupied, err := s.repo.Room.HasActiveOccupant(ctx, room.ID, utils.Today())
	if err != nil {
		return err
	}
	if occupied {
		return &ConflictError{Msg: "room " + room.RoomNumber + " has an active booking and cannot be removed"}
	}

	return s.repo.Room.Delete(ctx, room.ID)
}

// SetMaintenance takes a room out of the pool. A room holding an approved or
// checked-in booking today cannot be forced into maintenance.
func (s *roomService) SetMaintenance(ctx context.Context, roomID string) error {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return err
	}

	occupied, err := s.repo.Room.HasActiveOccupant(ctx, room.ID, utils.Today())
	if err != nil {
		return err
	}
	if occupied {
		return &ConflictError{Msg: "room " + room.RoomNumber + " is occupied and cannot enter maintenance"}
	}

	if err := s.repo.Room.SetMaintenance(ctx, room.ID, true); err != nil {
		return err
	}

	s.log.Info("Room moved to maintenance", zap.String("room_number", room.RoomNumber))
	return nil
}

func (s *roomService) ClearMaintenance(ctx context.Context, roomID string) error {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return err
	}

	if err := s.repo.Room.SetMaintenance(ctx, room.ID, false); err != nil {
		return err
	}

	s.log.Info("Room returned from maintenance", zap.String("room_number", room.RoomNumber))
	return nil
}

func (s *roomService) findRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, validationErrorf("invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, notFound("room", roomID)
	}

	return room, nil
}
