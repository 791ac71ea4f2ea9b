package events

import (
	"context"
	"errors"
	"hotelbooking/pkg/kafka"
	"hotelbooking/pkg/middleware"
	"hotelbooking/pkg/model"
	"testing"
	"time"
)

type mockProducer struct {
	published []kafka.Message
	err       error
	closed    bool
}

func (m *mockProducer) Publish(_ context.Context, msg kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

func (m *mockProducer) Close() error {
	m.closed = true
	return nil
}

func sampleEvent() BookingCreated {
	arrival, _ := model.ParseDate("2026-07-01")
	departure, _ := model.ParseDate("2026-07-04")
	return NewBookingCreated(&model.Booking{
		ID:            42,
		RoomID:        7,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Guests:        2,
		CreatedAt:     time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	})
}

func TestKafkaPublisher_PublishBookingCreated(t *testing.T) {
	producer := &mockProducer{}
	pub := NewKafkaPublisher(producer, "hotel-api")

	ctx := middleware.WithRequestID(context.Background(), "req-123")
	if err := pub.PublishBookingCreated(ctx, sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("expected 1 message, got %d", len(producer.published))
	}
	msg := producer.published[0]
	if msg.Key != "7" {
		t.Errorf("expected key 7, got %q", msg.Key)
	}
	if msg.GetEventType() != EventBookingCreated {
		t.Errorf("unexpected event type %q", msg.GetEventType())
	}
	if msg.GetCorrelationID() != "req-123" {
		t.Errorf("expected correlation id req-123, got %q", msg.GetCorrelationID())
	}

	var decoded BookingCreated
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.BookingID != 42 || decoded.ArrivalDate != "2026-07-01" || decoded.DepartureDate != "2026-07-04" {
		t.Errorf("unexpected payload %+v", decoded)
	}
}

func TestKafkaPublisher_WrapsProducerError(t *testing.T) {
	boom := errors.New("broker down")
	pub := NewKafkaPublisher(&mockProducer{err: boom}, "hotel-api")

	err := pub.PublishBookingCreated(context.Background(), sampleEvent())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped producer error, got %v", err)
	}
}

func TestKafkaPublisher_Close(t *testing.T) {
	producer := &mockProducer{}
	if err := NewKafkaPublisher(producer, "hotel-api").Close(); err != nil {
		t.Fatal(err)
	}
	if !producer.closed {
		t.Error("producer should be closed")
	}
}

func TestNoopPublisher(t *testing.T) {
	var pub Publisher = NoopPublisher{}
	if err := pub.PublishBookingCreated(context.Background(), sampleEvent()); err != nil {
		t.Errorf("noop publisher returned %v", err)
	}
}
