// Package memory implements the repositories in process memory. It backs
// local development and workflow tests; data is lost on restart.
package memory

import (
	"context"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/db"
	"hotelbooking/pkg/model"
	"sort"
	"strings"
	"sync"
	"time"
)

type txKey struct{}

// txState records inserts made inside a transaction so they can be undone.
type txState struct {
	bookings []int64
}

type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	hotels   map[int64]model.Hotel
	rooms    map[int64]model.Room
	bookings map[int64]model.Booking

	lastHotelID   int64
	lastRoomID    int64
	lastBookingID int64
}

func NewStore() *Store {
	return &Store{
		hotels:   make(map[int64]model.Hotel),
		rooms:    make(map[int64]model.Room),
		bookings: make(map[int64]model.Booking),
	}
}

func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		Hotels:   hotelRepository{store},
		Rooms:    roomRepository{store},
		Bookings: bookingRepository{store},
	}
}

// ExecuteTransaction serializes transactions and discards bookings created
// by fn when it fails.
func (s *Store) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	state := &txState{}
	if err := fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		s.mu.Lock()
		for _, id := range state.bookings {
			delete(s.bookings, id)
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

type hotelRepository struct{ s *Store }

func (r hotelRepository) FindByID(ctx context.Context, id int64) (*model.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	hotel, ok := r.s.hotels[id]
	if !ok {
		return nil, repository.ErrHotelNotFound
	}
	return &hotel, nil
}

func (r hotelRepository) Search(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(nameContains)
	hotels := []*model.Hotel{}
	for _, h := range r.s.hotels {
		if strings.Contains(strings.ToLower(h.Name), needle) {
			hotel := h
			hotels = append(hotels, &hotel)
		}
	}
	sort.Slice(hotels, func(i, j int) bool {
		if hotels[i].Name != hotels[j].Name {
			return hotels[i].Name < hotels[j].Name
		}
		return hotels[i].ID < hotels[j].ID
	})
	return hotels, nil
}

func (r hotelRepository) CreateWithRooms(ctx context.Context, hotel *model.Hotel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[int]bool, len(hotel.Rooms))
	for _, room := range hotel.Rooms {
		if seen[room.RoomNumber] {
			return repository.ErrDuplicate
		}
		seen[room.RoomNumber] = true
	}

	r.s.lastHotelID++
	hotel.ID = r.s.lastHotelID
	for i := range hotel.Rooms {
		r.s.lastRoomID++
		hotel.Rooms[i].ID = r.s.lastRoomID
		hotel.Rooms[i].HotelID = hotel.ID
		r.s.rooms[hotel.Rooms[i].ID] = hotel.Rooms[i]
	}

	stored := *hotel
	stored.Rooms = nil
	r.s.hotels[hotel.ID] = stored
	return nil
}

func (r hotelRepository) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.hotels = make(map[int64]model.Hotel)
	r.s.rooms = make(map[int64]model.Room)
	r.s.bookings = make(map[int64]model.Booking)
	return nil
}

type roomRepository struct{ s *Store }

func (r roomRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	return &room, nil
}

func (r roomRepository) FindByHotel(ctx context.Context, hotelID int64) ([]*model.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rooms := []*model.Room{}
	for _, rm := range r.s.rooms {
		if rm.HotelID == hotelID {
			room := rm
			rooms = append(rooms, &room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

type bookingRepository struct{ s *Store }

func (r bookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	return &booking, nil
}

func (r bookingRepository) FindOverlapping(ctx context.Context, roomID int64, stay model.DateRange) ([]*model.Booking, error) {
	return r.FindOverlappingForRooms(ctx, []int64{roomID}, stay)
}

func (r bookingRepository) FindOverlappingForRooms(ctx context.Context, roomIDs []int64, stay model.DateRange) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[int64]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}

	bookings := []*model.Booking{}
	for _, b := range r.s.bookings {
		if wanted[b.RoomID] && model.Overlaps(b.ArrivalDate, b.DepartureDate, stay.Arrival, stay.Departure) {
			booking := b
			bookings = append(bookings, &booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (r bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastBookingID++
	booking.ID = r.s.lastBookingID
	booking.CreatedAt = time.Now().UTC()
	r.s.bookings[booking.ID] = *booking

	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		state.bookings = append(state.bookings, booking.ID)
	}
	return nil
}

func (r bookingRepository) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	return r.s.ExecuteTransaction(ctx, fn)
}

// BookingCount reports how many bookings are stored.
func (s *Store) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
