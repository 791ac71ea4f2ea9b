// Package events announces booking outcomes to other systems.
package events

import (
	"context"
	"fmt"
	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/middleware"
	"hotelbooking/pkg/model"
	"strconv"
	"time"
)

const (
	EventBookingCreated = "booking.created"
	SchemaVersion       = "1"
)

// BookingCreated is the payload published after a booking commits.
type BookingCreated struct {
	BookingID     int64     `json:"booking_id"`
	RoomID        int64     `json:"room_id"`
	ArrivalDate   string    `json:"arrival_date"`
	DepartureDate string    `json:"departure_date"`
	Guests        int       `json:"guests"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingCreated(b *model.Booking) BookingCreated {
	return BookingCreated{
		BookingID:     b.ID,
		RoomID:        b.RoomID,
		ArrivalDate:   model.FormatDate(b.ArrivalDate),
		DepartureDate: model.FormatDate(b.DepartureDate),
		Guests:        b.Guests,
		CreatedAt:     b.CreatedAt,
	}
}

type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
	Close() error
}

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer producer
	source   string
}

func NewKafkaPublisher(p producer, source string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, source: source}
}

// PublishBookingCreated keys the message by room so events for one room
// stay ordered within a partition.
func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	builder := kafka.NewMessage().
		WithKey(strconv.FormatInt(event.RoomID, 10)).
		WithValue(event).
		WithEventType(EventBookingCreated).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source)
	if requestID := middleware.RequestID(ctx); requestID != "" {
		builder = builder.WithCorrelationID(requestID)
	}

	msg, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build booking event: %w", err)
	}
	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish booking %d: %w", event.BookingID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops every event. Used when events are disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(context.Context, BookingCreated) error { return nil }

func (NoopPublisher) Close() error { return nil }
