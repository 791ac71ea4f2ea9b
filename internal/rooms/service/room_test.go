package service

import (
	"context"
	"errors"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/repository/memory"
	"hotelbooking/internal/rooms/validator"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"testing"
	"time"
)

type failingBookings struct {
	repository.BookingRepository
}

func (failingBookings) FindOverlappingForRooms(ctx context.Context, roomIDs []int64, stay model.DateRange) ([]*model.Booking, error) {
	return nil, errors.New("connection reset")
}

func day(n int) time.Time {
	return model.DateOf(time.Now().UTC()).AddDate(0, 0, n)
}

func setup(t *testing.T) (*repository.Repositories, *model.Hotel, func(*repository.Repositories) RoomService) {
	t.Helper()
	repos := memory.NewRepositories(memory.NewStore())
	hotel := &model.Hotel{
		Name: "Overlook",
		Rooms: []model.Room{
			model.NewRoom(101, model.RoomTypeSingle),
			model.NewRoom(102, model.RoomTypeDouble),
			model.NewRoom(103, model.RoomTypeDeluxe),
		},
	}
	if err := repos.Hotels.CreateWithRooms(context.Background(), hotel); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{Log: logger.Discard(), MaxGuestsPerRequest: 25}
	build := func(r *repository.Repositories) RoomService {
		return NewRoomService(r, validator.NewAvailabilityValidator(cfg.Log, cfg.MaxGuestsPerRequest), cfg)
	}
	return repos, hotel, build
}

func book(t *testing.T, repos *repository.Repositories, roomID int64, arrival, departure int) {
	t.Helper()
	err := repos.Bookings.Create(context.Background(), &model.Booking{
		RoomID:        roomID,
		ArrivalDate:   day(arrival),
		DepartureDate: day(departure),
		Guests:        1,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
}

func roomNumbers(t *testing.T, result SearchAvailableResult) []int {
	t.Helper()
	available, ok := result.(RoomsAvailable)
	if !ok {
		t.Fatalf("expected RoomsAvailable, got %T", result)
	}
	numbers := make([]int, 0, len(available.Rooms))
	for _, r := range available.Rooms {
		numbers = append(numbers, r.RoomNumber)
	}
	return numbers
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchAvailable(t *testing.T) {
	repos, hotel, build := setup(t)
	svc := build(repos)
	single, double := hotel.Rooms[0].ID, hotel.Rooms[1].ID

	book(t, repos, single, 5, 8)
	book(t, repos, double, 1, 5)

	tests := []struct {
		name      string
		arrival   int
		departure int
		guests    int
		want      []int
	}{
		{"early stay excludes double", 1, 2, 1, []int{101, 103}},
		{"overlap excludes single", 6, 7, 1, []int{102, 103}},
		{"double checkout day is free", 5, 6, 1, []int{102, 103}},
		{"arrival on checkout", 8, 9, 1, []int{101, 102, 103}},
		{"aggregate capacity fits", 8, 9, 7, []int{101, 102, 103}},
		{"aggregate capacity too small", 6, 7, 7, []int{}},
		{"no per-room filter", 6, 7, 5, []int{102, 103}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SearchAvailable(context.Background(), model.AvailabilityCriteria{
				HotelID:       hotel.ID,
				ArrivalDate:   day(tt.arrival),
				DepartureDate: day(tt.departure),
				Guests:        tt.guests,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := roomNumbers(t, result); !equalInts(got, tt.want) {
				t.Errorf("expected rooms %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearchAvailable_HotelNotFound(t *testing.T) {
	repos, _, build := setup(t)

	result, err := build(repos).SearchAvailable(context.Background(), model.AvailabilityCriteria{
		HotelID: 999, ArrivalDate: day(1), DepartureDate: day(2), Guests: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(HotelNotFound); !ok {
		t.Fatalf("expected HotelNotFound, got %T", result)
	}
}

func TestSearchAvailable_Validation(t *testing.T) {
	repos, hotel, build := setup(t)

	_, err := build(repos).SearchAvailable(context.Background(), model.AvailabilityCriteria{
		HotelID: hotel.ID, ArrivalDate: day(3), DepartureDate: day(2), Guests: 1,
	})
	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearchAvailable_RepositoryFailure(t *testing.T) {
	repos, hotel, build := setup(t)
	broken := *repos
	broken.Bookings = failingBookings{repos.Bookings}

	result, err := build(&broken).SearchAvailable(context.Background(), model.AvailabilityCriteria{
		HotelID: hotel.ID, ArrivalDate: day(1), DepartureDate: day(2), Guests: 1,
	})
	if result != nil {
		t.Errorf("expected no result, got %T", result)
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestSearchAvailable_RepeatedSearchIsStable(t *testing.T) {
	repos, hotel, build := setup(t)
	svc := build(repos)
	book(t, repos, hotel.Rooms[1].ID, 3, 6)

	criteria := model.AvailabilityCriteria{
		HotelID:       hotel.ID,
		ArrivalDate:   day(4),
		DepartureDate: day(7),
		Guests:        2,
	}

	first, err := svc.SearchAvailable(context.Background(), criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SearchAvailable(context.Background(), criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got1, got2 := roomNumbers(t, first), roomNumbers(t, second)
	if !equalInts(got1, got2) {
		t.Errorf("repeated search differs: %v then %v", got1, got2)
	}
	if !equalInts(got1, []int{101, 103}) {
		t.Errorf("expected rooms [101 103], got %v", got1)
	}
}
