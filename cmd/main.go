package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/elitejetskis/EJS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/elitejetskis/EJS-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/elitejetskis/EJS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/elitejetskis/EJS-BookingService/internal/api/handlers/get_booking"
	listPackagesHandler "github.com/elitejetskis/EJS-BookingService/internal/api/handlers/list_packages"
	"github.com/elitejetskis/EJS-BookingService/internal/api/middleware"
	"github.com/elitejetskis/EJS-BookingService/internal/config"
	bookingRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/catalog"
	"github.com/elitejetskis/EJS-BookingService/internal/notify/whatsapp"
	bookingsService "github.com/elitejetskis/EJS-BookingService/internal/service/bookings"
	createBookingUC "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/elitejetskis/EJS-BookingService/internal/usecase/get_available_slots"
	listPackagesUC "github.com/elitejetskis/EJS-BookingService/internal/usecase/list_packages"
	"github.com/elitejetskis/EJS-BookingService/pkg/dbmetrics"
	"github.com/elitejetskis/EJS-BookingService/pkg/logger"
	"github.com/elitejetskis/EJS-BookingService/pkg/metrics"
	"github.com/elitejetskis/EJS-BookingService/pkg/simpletxmanager"
	"github.com/elitejetskis/EJS-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	// Fail closed: неполная конфигурация БД валит процесс на старте,
	// путь записи никогда не работает без учетных данных хранилища
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EJS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Ссылки передачи подтверждения в WhatsApp и календарь
	notifier := whatsapp.New(cfg.WhatsApp.Number, cfg.WhatsApp.Location)
	log.Info("WhatsApp handoff configured (number=%s)", cfg.WhatsApp.Number)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txMgr,
		cfg.Booking.AdvanceBookingDays,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		getAvailableSlotsUC.Window{
			OpenTime:           cfg.Booking.OpenTime,
			CloseTime:          cfg.Booking.CloseTime,
			SlotStepMinutes:    cfg.Booking.SlotStepMinutes,
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
		},
		log,
	)

	listPackagesUseCase := listPackagesUC.NewUseCase(catalogRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, notifier, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listPackages := listPackagesHandler.NewHandler(listPackagesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог активных пакетов туров
	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)

	// Сетка слотов пакета на дату
	api.HandleFunc("/packages/{packageId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по номеру
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
