package service

import (
	"context"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
	"hotelbooking/pkg/sanitizer"
)

const maxNameFilterLength = 200

type HotelService interface {
	// Search lists hotels whose name contains name, ignoring case and
	// surrounding whitespace. An empty name lists every hotel.
	Search(ctx context.Context, name string) ([]model.HotelSummary, error)
}

type hotelService struct {
	repo repository.HotelRepository
	cfg  *config.Config
}

func NewHotelService(repo repository.HotelRepository, cfg *config.Config) HotelService {
	return &hotelService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *hotelService) Search(ctx context.Context, name string) ([]model.HotelSummary, error) {
	name = sanitizer.NormalizeHotelName(name)
	if len(name) > maxNameFilterLength {
		return nil, apperrors.Validation("Invalid hotel search", map[string]any{
			"name": "must be at most 200 characters",
		})
	}

	hotels, err := s.repo.Search(ctx, name)
	if err != nil {
		s.cfg.Log.Error("Failed to search hotels", "name", name, "error", err)
		return nil, apperrors.Internal("Failed to search hotels", err)
	}

	summaries := make([]model.HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		summaries = append(summaries, h.Summary())
	}

	s.cfg.Log.Debug("Hotel search completed", "name", name, "count", len(summaries))
	return summaries, nil
}
