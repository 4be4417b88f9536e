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
	"github.com/redis/go-redis/v9"

	bookingWizardHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/booking_wizard"
	cancelBookingHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/check_availability"
	checkVerificationHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/check_verification"
	createBookingHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/get_booking"
	getRentalTypesHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/get_rental_types"
	getRoomAvailabilityHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/get_room_availability"
	getTenantBookingsHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/get_tenant_bookings"
	updateBookingStatusHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/update_booking_status"
	"github.com/rusunawa-id/booking-service/internal/api/middleware"
	"github.com/rusunawa-id/booking-service/internal/config"
	bookingRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/booking"
	documentRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/document"
	roomRepo "github.com/rusunawa-id/booking-service/internal/infra/storage/room"
	sessionStore "github.com/rusunawa-id/booking-service/internal/infra/storage/session"
	tenantServiceClient "github.com/rusunawa-id/booking-service/internal/integrations/tenantservice"
	bookingsService "github.com/rusunawa-id/booking-service/internal/service/bookings"
	roomsService "github.com/rusunawa-id/booking-service/internal/service/rooms"
	bookingWizardUC "github.com/rusunawa-id/booking-service/internal/usecase/booking_wizard"
	checkAvailabilityUC "github.com/rusunawa-id/booking-service/internal/usecase/check_availability"
	checkVerificationUC "github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
	createBookingUC "github.com/rusunawa-id/booking-service/internal/usecase/create_booking"
	"github.com/rusunawa-id/booking-service/pkg/dbmetrics"
	"github.com/rusunawa-id/booking-service/pkg/logger"
	"github.com/rusunawa-id/booking-service/pkg/metrics"
	"github.com/rusunawa-id/booking-service/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("RUSUNAWA_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting rusunawa booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil метрики безопасны во всех слоях.
	var metricsCollector *metrics.Metrics
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
	log.Debug("Database pool: max_open=%d, max_idle=%d, conn_max_lifetime=%ds",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	documentRepository := documentRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)

	// Хранилище сессий мастера: Redis, если включен, иначе память процесса
	sessionTTL := time.Duration(cfg.Wizard.SessionTTL) * time.Minute
	log.Debug("Wizard session TTL: %s", sessionTTL)
	var sessions bookingWizardUC.SessionStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		sessions = sessionStore.NewRedisStore(redisClient, sessionTTL)
		log.Info("Wizard sessions stored in redis (addr=%s, ttl=%s)", cfg.Redis.Addr, sessionTTL)
	} else {
		sessions = sessionStore.NewMemoryStore()
		log.Warn("Redis disabled, wizard sessions are kept in memory")
	}

	// Инициализируем интеграционных клиентов
	tenantClient := tenantServiceClient.NewClient(
		cfg.TenantService.URL,
		time.Duration(cfg.TenantService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (TenantService=%s timeout=%ds)",
		cfg.TenantService.URL, cfg.TenantService.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, bookingRepository, txMgr, log)

	// Инициализируем use cases
	checkVerificationUseCase := checkVerificationUC.NewUseCase(
		documentRepository,
		tenantClient,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		roomRepository,
		bookingRepository,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		checkVerificationUseCase,
		txMgr,
		metricsCollector,
		log,
	)
	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		sessions,
		roomRepository,
		checkAvailabilityUseCase,
		createBookingUseCase,
		metricsCollector,
		sessionTTL,
		log,
	)

	// Инициализируем handlers
	getRentalTypes := getRentalTypesHandler.NewHandler(roomSvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(roomSvc, log)
	checkVerification := checkVerificationHandler.NewHandler(checkVerificationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTenantBookings := getTenantBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	bookingWizard := bookingWizardHandler.NewHandler(bookingWizardUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник типов аренды
	api.HandleFunc("/rental-types", getRentalTypes.Handle).Methods(http.MethodGet)

	// Календарь доступности комнаты
	api.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Tenant-ID или X-Role: admin)
	// ============================================================

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth)

	// --- Проверки ---
	protected.HandleFunc("/tenants/{tenantId}/verification", checkVerification.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tenants/{tenantId}/bookings", getTenantBookings.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	protected.HandleFunc("/wizard", bookingWizard.Start).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}", bookingWizard.Get).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/{sessionId}/dates", bookingWizard.SelectDates).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/{sessionId}/next", bookingWizard.Next).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/previous", bookingWizard.Previous).Methods(http.MethodPost)

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
	close(stopMetricsCh)

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
