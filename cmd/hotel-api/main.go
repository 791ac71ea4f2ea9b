package main

import (
	admHandler "hotelbooking/internal/admin/handler"
	admService "hotelbooking/internal/admin/service"
	bkHandler "hotelbooking/internal/bookings/handler"
	bkService "hotelbooking/internal/bookings/service"
	bkValidator "hotelbooking/internal/bookings/validator"
	"hotelbooking/internal/events"
	htHandler "hotelbooking/internal/hotels/handler"
	htService "hotelbooking/internal/hotels/service"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/roomlock"
	rmHandler "hotelbooking/internal/rooms/handler"
	rmService "hotelbooking/internal/rooms/service"
	rmValidator "hotelbooking/internal/rooms/validator"
	"hotelbooking/internal/storage"
	"hotelbooking/pkg/app"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/contracts"
	"hotelbooking/pkg/kafka"
	kafka_config "hotelbooking/pkg/kafka/config"
	kafka_middleware "hotelbooking/pkg/kafka/middleware"
)

const ServiceName = "hotel-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Connect()

	cfg.Log.Info("Starting Hotel Booking API", "storage", cfg.Client.StorageName())

	repos, err := storage.NewRepositories(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize repositories", "error", err)
	}

	publisher := initPublisher(cfg)
	handlers := initHandlers(cfg, repos, publisher)

	serverApp := app.NewApplication()
	if err := serverApp.SetApp(cfg, handlers, publisher); err != nil {
		cfg.Log.Fatal("Failed to configure application", "error", err)
	}
	serverApp.Run()
}

func initHandlers(cfg *config.Config, repos *repository.Repositories, publisher events.Publisher) []contracts.Handler {
	// one registry per process; see roomlock for the multi-instance caveat
	guard := roomlock.NewRegistry()

	bookingService := bkService.NewBookingService(
		repos,
		guard,
		publisher,
		bkValidator.NewBookingValidator(cfg.Log, cfg.MaxGuestsPerRequest),
		cfg,
	)
	roomService := rmService.NewRoomService(
		repos,
		rmValidator.NewAvailabilityValidator(cfg.Log, cfg.MaxGuestsPerRequest),
		cfg,
	)
	hotelService := htService.NewHotelService(repos.Hotels, cfg)

	handlers := []contracts.Handler{
		htHandler.NewHotelHandler(hotelService, cfg.Log),
		rmHandler.NewRoomHandler(roomService, cfg.Log),
		bkHandler.NewBookingHandler(bookingService, cfg.Log),
	}

	if cfg.AdminEnabled {
		adminService := admService.NewAdminService(repos, cfg)
		handlers = append(handlers, admHandler.NewAdminHandler(adminService, cfg.Log))
		cfg.Log.Warn("Admin endpoints enabled")
	}

	cfg.Log.Info("Services initialized", "handlers", len(handlers))
	return handlers
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Booking events disabled")
		return events.NoopPublisher{}
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log, cfg.EventsTopic, cfg.EventsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Booking events enabled", "topic", cfg.EventsTopic)
	return events.NewKafkaPublisher(producer, ServiceName)
}
