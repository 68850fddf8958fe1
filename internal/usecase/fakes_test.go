package usecase

import (
	"context"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

// The fakes below mirror the storage contract the services rely on. The
// booking fake guards its atomic operations with a mutex so the overlap
// recheck and the write are indivisible, same as the real transaction.

type fakeGuestProfileRepo struct {
	profiles map[uuid.UUID]*entity.GuestProfile
}

func (f *fakeGuestProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GuestProfile, error) {
	return f.profiles[id], nil
}

type fakeRoomTypeRepo struct {
	types map[uuid.UUID]*entity.RoomType
}

func (f *fakeRoomTypeRepo) Create(_ context.Context, rt *entity.RoomType) error {
	f.types[rt.ID] = rt
	return nil
}

func (f *fakeRoomTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomType, error) {
	return f.types[id], nil
}

func (f *fakeRoomTypeRepo) FindAll(_ context.Context, bookableOnly bool) ([]*entity.RoomType, error) {
	var out []*entity.RoomType
	for _, rt := range f.types {
		if bookableOnly && !rt.IsBookable {
			continue
		}
		out = append(out, rt)
	}
	return out, nil
}

func (f *fakeRoomTypeRepo) Update(_ context.Context, rt *entity.RoomType) error {
	f.types[rt.ID] = rt
	return nil
}

func (f *fakeRoomTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.types, id)
	return nil
}

type fakeRoomRepo struct {
	rooms    map[uuid.UUID]*entity.Room
	bookings *fakeBookingRepo
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByRoomNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	for _, room := range f.rooms {
		if room.RoomNumber == roomNumber {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindByTypeID(_ context.Context, roomTypeID uuid.UUID) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if room.RoomTypeID == roomTypeID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) SetMaintenance(_ context.Context, roomID uuid.UUID, maintenance bool) error {
	f.rooms[roomID].Maintenance = maintenance
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) CountUsableByType(_ context.Context, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	for _, room := range f.rooms {
		if room.RoomTypeID == roomTypeID && !room.Maintenance {
			count++
		}
	}
	return count, nil
}

func (f *fakeRoomRepo) FindAvailableByType(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if room.RoomTypeID != roomTypeID || room.Maintenance {
			continue
		}
		overlapping, _ := f.bookings.FindActiveOverlappingByRoom(ctx, room.ID, checkIn, checkOut)
		if len(overlapping) == 0 {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindOccupiedRoomIDs(_ context.Context, roomTypeID uuid.UUID, day time.Time) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, b := range f.bookings.all() {
		if b.RoomID == nil || !b.Covers(day) {
			continue
		}
		if b.Status != entity.BookingStatusApproved && b.Status != entity.BookingStatusCheckedIn {
			continue
		}
		if room := f.rooms[*b.RoomID]; room != nil && room.RoomTypeID == roomTypeID {
			out = append(out, *b.RoomID)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) HasActiveOccupant(_ context.Context, roomID uuid.UUID, day time.Time) (bool, error) {
	for _, b := range f.bookings.all() {
		if b.RoomID == nil || *b.RoomID != roomID {
			continue
		}
		if b.Status != entity.BookingStatusApproved && b.Status != entity.BookingStatusCheckedIn {
			continue
		}
		if b.Covers(day) {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) all() []*entity.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) FindByReferenceCode(_ context.Context, referenceCode string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ReferenceCode == referenceCode {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByGuestID(_ context.Context, guestID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.all() {
		if b.GuestID != nil && *b.GuestID == guestID {
			out = append(out, b)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByGuestID(_ context.Context, guestID uuid.UUID) (int64, error) {
	var count int64
	for _, b := range f.all() {
		if b.GuestID != nil && *b.GuestID == guestID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) FindByStatus(_ context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.all() {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindActiveOverlappingByType(_ context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.all() {
		if b.RoomTypeID == roomTypeID && b.Status.IsActive() && entity.Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindActiveOverlappingByRoom(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.all() {
		if b.RoomID != nil && *b.RoomID == roomID && b.Status.IsActive() && entity.Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, from, to entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bookings[bookingID]
	if b == nil || b.Status != from {
		return repository.ErrStaleStatus
	}
	b.Status = to
	return nil
}

func (f *fakeBookingRepo) SetRejected(_ context.Context, bookingID uuid.UUID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bookings[bookingID]
	if b == nil || b.Status != entity.BookingStatusPending {
		return repository.ErrStaleStatus
	}
	b.Status = entity.BookingStatusRejected
	b.RejectReason = &reason
	return nil
}

func (f *fakeBookingRepo) RecordPayment(_ context.Context, bookingID uuid.UUID, amount float64, paymentRef string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bookings[bookingID]
	if b == nil || !b.Status.IsActive() {
		return repository.ErrStaleStatus
	}
	b.AmountPaid += amount
	b.PaymentRef = &paymentRef
	return nil
}

func (f *fakeBookingRepo) MarkCheckedIn(_ context.Context, bookingID uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bookings[bookingID]
	if b == nil || b.Status != entity.BookingStatusApproved {
		return repository.ErrStaleStatus
	}
	b.Status = entity.BookingStatusCheckedIn
	b.ActualCheckIn = &at
	return nil
}

func (f *fakeBookingRepo) MarkCheckedOut(_ context.Context, bookingID uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bookings[bookingID]
	if b == nil || b.Status != entity.BookingStatusCheckedIn {
		return repository.ErrStaleStatus
	}
	b.Status = entity.BookingStatusCheckedOut
	b.ActualCheckOut = &at
	return nil
}

func (f *fakeBookingRepo) roomIntervalClearLocked(roomID, excludeBookingID uuid.UUID, checkIn, checkOut time.Time) bool {
	for _, b := range f.bookings {
		if b.ID == excludeBookingID || b.RoomID == nil || *b.RoomID != roomID {
			continue
		}
		if b.Status.IsActive() && entity.Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut) {
			return false
		}
	}
	return true
}

func (f *fakeBookingRepo) AssignRoom(_ context.Context, bookingID, roomID uuid.UUID, checkIn, checkOut time.Time, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.roomIntervalClearLocked(roomID, bookingID, checkIn, checkOut) {
		return repository.ErrRoomConflict
	}
	b := f.bookings[bookingID]
	if b == nil || b.Status != entity.BookingStatusPending {
		return repository.ErrStaleStatus
	}
	b.RoomID = &roomID
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) CreateWithRoom(_ context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.roomIntervalClearLocked(*booking.RoomID, booking.ID, booking.CheckInDate, booking.CheckOutDate) {
		return repository.ErrRoomConflict
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) ExtendStay(_ context.Context, bookingID, roomID uuid.UUID, oldCheckOut, newCheckOut time.Time, totalPrice, discountAmount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.roomIntervalClearLocked(roomID, bookingID, oldCheckOut, newCheckOut) {
		return repository.ErrRoomConflict
	}
	b := f.bookings[bookingID]
	if b == nil || (b.Status != entity.BookingStatusApproved && b.Status != entity.BookingStatusCheckedIn) {
		return repository.ErrStaleStatus
	}
	b.CheckOutDate = newCheckOut
	b.TotalPrice = totalPrice
	b.DiscountAmount = discountAmount
	return nil
}

type fakeRatingRepo struct {
	ratings map[uuid.UUID]*entity.Rating
}

func (f *fakeRatingRepo) Create(_ context.Context, rating *entity.Rating) error {
	f.ratings[rating.ID] = rating
	return nil
}

func (f *fakeRatingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Rating, error) {
	return f.ratings[id], nil
}

func (f *fakeRatingRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Rating, error) {
	for _, r := range f.ratings {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRatingRepo) FindByRoomTypeID(_ context.Context, roomTypeID uuid.UUID, limit, offset int) ([]*entity.Rating, error) {
	var out []*entity.Rating
	for _, r := range f.ratings {
		if r.RoomTypeID == roomTypeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) CountByRoomTypeID(_ context.Context, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	for _, r := range f.ratings {
		if r.RoomTypeID == roomTypeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRatingRepo) Update(_ context.Context, rating *entity.Rating) error {
	f.ratings[rating.ID] = rating
	return nil
}

func (f *fakeRatingRepo) GetRoomTypeStats(_ context.Context, roomTypeID uuid.UUID) (float64, int64, error) {
	var sum float64
	var count int64
	for _, r := range f.ratings {
		if r.RoomTypeID == roomTypeID {
			sum += float64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

// recordingPublisher captures event names for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(event string, _ map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) has(event string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.events {
		if e == event {
			return true
		}
	}
	return false
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if s, ok := f.sessions[token]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllGuestSessions(_ context.Context, guestID uuid.UUID) error {
	now := time.Now()
	for _, s := range f.sessions {
		if s.GuestID == guestID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	for token, s := range f.sessions {
		if !s.ExpiresAt.After(time.Now()) {
			delete(f.sessions, token)
		}
	}
	return nil
}

// testEnv wires the fake repositories into a Repository grouping the
// services accept.
type testEnv struct {
	repo     *repository.Repository
	profiles *fakeGuestProfileRepo
	types    *fakeRoomTypeRepo
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	ratings  *fakeRatingRepo
	sessions *fakeSessionRepo
	events   *recordingPublisher
}

func newTestEnv() *testEnv {
	bookings := newFakeBookingRepo()
	profiles := &fakeGuestProfileRepo{profiles: make(map[uuid.UUID]*entity.GuestProfile)}
	types := &fakeRoomTypeRepo{types: make(map[uuid.UUID]*entity.RoomType)}
	rooms := &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room), bookings: bookings}
	ratings := &fakeRatingRepo{ratings: make(map[uuid.UUID]*entity.Rating)}
	sessions := &fakeSessionRepo{sessions: make(map[string]*entity.Session)}

	return &testEnv{
		repo: &repository.Repository{
			Session:      sessions,
			GuestProfile: profiles,
			RoomType:     types,
			Room:         rooms,
			Booking:      bookings,
			Rating:       ratings,
		},
		profiles: profiles,
		types:    types,
		rooms:    rooms,
		bookings: bookings,
		ratings:  ratings,
		sessions: sessions,
		events:   &recordingPublisher{},
	}
}

func (e *testEnv) addRoomType(rate float64, maxGuests int) *entity.RoomType {
	rt := &entity.RoomType{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:        "Deluxe",
		NightlyRate: rate,
		MaxGuests:   maxGuests,
		IsBookable:  true,
	}
	e.types.types[rt.ID] = rt
	return rt
}

func (e *testEnv) addRoom(roomTypeID uuid.UUID, number string) *entity.Room {
	room := &entity.Room{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		RoomTypeID: roomTypeID,
		RoomNumber: number,
	}
	e.rooms.rooms[room.ID] = room
	return room
}

func (e *testEnv) addGuest() *entity.GuestProfile {
	phone := "+6281234567"
	docRef := "docs/id-card.png"
	p := &entity.GuestProfile{
		ID:            uuid.New(),
		FullName:      "Siti Rahma",
		Email:         "siti@example.com",
		Phone:         &phone,
		IDDocumentRef: &docRef,
	}
	e.profiles.profiles[p.ID] = p
	return p
}
