package service

import (
	"context"
	"errors"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"strings"
	"testing"
)

type mockHotelRepository struct {
	searchFunc func(ctx context.Context, nameContains string) ([]*model.Hotel, error)
}

func (m *mockHotelRepository) FindByID(ctx context.Context, id int64) (*model.Hotel, error) {
	return nil, nil
}

func (m *mockHotelRepository) Search(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
	return m.searchFunc(ctx, nameContains)
}

func (m *mockHotelRepository) CreateWithRooms(ctx context.Context, hotel *model.Hotel) error {
	return nil
}

func (m *mockHotelRepository) DeleteAll(ctx context.Context) error {
	return nil
}

func TestSearch_NormalizesName(t *testing.T) {
	var received string
	repo := &mockHotelRepository{
		searchFunc: func(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
			received = nameContains
			return []*model.Hotel{{ID: 1, Name: "Hotel 1", Rooms: []model.Room{{ID: 3}}}}, nil
		},
	}
	svc := NewHotelService(repo, &config.Config{Log: logger.Discard()})

	hotels, err := svc.Search(context.Background(), "   hotel \t  1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received != "hotel 1" {
		t.Errorf("expected normalized filter, got %q", received)
	}
	if len(hotels) != 1 || hotels[0] != (model.HotelSummary{ID: 1, Name: "Hotel 1"}) {
		t.Errorf("unexpected result %+v", hotels)
	}
}

func TestSearch_EmptyResultIsNotNil(t *testing.T) {
	repo := &mockHotelRepository{
		searchFunc: func(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
			return nil, nil
		},
	}
	hotels, err := NewHotelService(repo, &config.Config{Log: logger.Discard()}).Search(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hotels == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestSearch_Errors(t *testing.T) {
	repo := &mockHotelRepository{
		searchFunc: func(ctx context.Context, nameContains string) ([]*model.Hotel, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := NewHotelService(repo, &config.Config{Log: logger.Discard()})

	_, err := svc.Search(context.Background(), "x")
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Errorf("expected internal error, got %v", err)
	}

	_, err = svc.Search(context.Background(), strings.Repeat("a", 201))
	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}
