package service

import (
	"context"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

const seedHotelCount = 3

// seedLayout is the room plan of every seeded hotel.
var seedLayout = []model.RoomType{
	model.RoomTypeSingle,
	model.RoomTypeSingle,
	model.RoomTypeDouble,
	model.RoomTypeDouble,
	model.RoomTypeDeluxe,
	model.RoomTypeDeluxe,
}

type AdminService interface {
	// Seed adds test hotels. Calling it twice adds a second set.
	Seed(ctx context.Context) error
	// Reset removes every hotel, room and booking.
	Reset(ctx context.Context) error
}

type adminService struct {
	hotels   repository.HotelRepository
	bookings repository.BookingRepository
	cfg      *config.Config
}

func NewAdminService(repos *repository.Repositories, cfg *config.Config) AdminService {
	return &adminService{
		hotels:   repos.Hotels,
		bookings: repos.Bookings,
		cfg:      cfg,
	}
}

func SeedHotels() []*model.Hotel {
	hotels := make([]*model.Hotel, 0, seedHotelCount)
	for i := 1; i <= seedHotelCount; i++ {
		hotel := &model.Hotel{Name: fmt.Sprintf("Hotel %d", i)}
		for j, roomType := range seedLayout {
			hotel.Rooms = append(hotel.Rooms, model.NewRoom(101+j, roomType))
		}
		hotels = append(hotels, hotel)
	}
	return hotels
}

func (s *adminService) Seed(ctx context.Context) error {
	hotels := SeedHotels()
	err := s.bookings.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		for _, hotel := range hotels {
			if err := s.hotels.CreateWithRooms(txCtx, hotel); err != nil {
				return fmt.Errorf("seed %s: %w", hotel.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to seed hotels", "error", err)
		return apperrors.Internal("Failed to seed hotels", err)
	}

	s.cfg.Log.Info("Seeded hotels", "hotels", len(hotels), "rooms_per_hotel", len(seedLayout))
	return nil
}

func (s *adminService) Reset(ctx context.Context) error {
	if err := s.hotels.DeleteAll(ctx); err != nil {
		s.cfg.Log.Error("Failed to reset data", "error", err)
		return apperrors.Internal("Failed to reset data", err)
	}

	s.cfg.Log.Warn("All hotels, rooms and bookings removed")
	return nil
}
