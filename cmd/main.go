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

	createPackageHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/create_package"
	deletePackageHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/delete_package"
	getAvailabilityHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_day_schedule"
	getUserBookingsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/list_bookings"
	listPackagesHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/list_packages"
	rejectBookingHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/reject_booking"
	submitBookingHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/submit_booking"
	updatePackageHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/update_package"
	verifyPaymentHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoStudio-BookingService/internal/config"
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/cache"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/studiopackage"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
	razorpayClient "github.com/m04kA/PhotoStudio-BookingService/internal/integrations/razorpay"
	availabilityService "github.com/m04kA/PhotoStudio-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings"
	expiryService "github.com/m04kA/PhotoStudio-BookingService/internal/service/expiry"
	packagesService "github.com/m04kA/PhotoStudio-BookingService/internal/service/packages"
	confirmPaymentUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/confirm_payment"
	getDayScheduleUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_day_schedule"
	submitBookingUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/submit_booking"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/logger"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/metrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
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

	log.Info("Starting PhotoStudio-BookingService...")
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
		packageRepository *packageRepo.Repository
		txMgr             submitBookingUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		packageRepository = packageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		packageRepository = packageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем клиент платежного шлюза
	paymentClient := razorpayClient.NewClient(
		cfg.Razorpay.BaseURL,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		time.Duration(cfg.Razorpay.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.Razorpay.BaseURL, cfg.Razorpay.Timeout)

	// Инициализируем кеш занятости (если включен)
	var occupancyCache availabilityService.OccupancyCache
	var occCache *cache.OccupancyCache

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		occCache = cache.NewOccupancyCache(
			redisClient,
			time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second,
		)
		occupancyCache = occCache
		log.Info("Occupancy cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTLSeconds)
	}

	// Инициализируем producer событий (если включен)
	var eventProducer *stream.Producer

	if cfg.Kafka.Enabled {
		eventProducer = stream.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer eventProducer.Close()
		log.Info("Event producer initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Сетка слотов
	catalog := domain.NewSlotCatalog(cfg.Slots.StartHour, cfg.Slots.EndHour, cfg.Slots.StepMinutes)
	log.Info("Slot catalog: %d slots per day", catalog.Size())

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, occupancyCache, log)
	bookingSvc := bookingsService.NewService(bookingRepository, availabilitySvc, eventPublisher(eventProducer), log)
	packageSvc := packagesService.NewService(packageRepository, log)

	pendingTTL := time.Duration(cfg.Booking.PendingTTLMinutes) * time.Minute
	expirySvc := expiryService.NewService(
		bookingRepository,
		availabilitySvc,
		eventPublisher(eventProducer),
		pendingTTL,
		log,
	)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		paymentClient,
		availabilitySvc,
		catalog,
		txMgr,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		paymentClient,
		availabilitySvc,
		eventPublisher(eventProducer),
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(availabilitySvc, catalog, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	listPackages := listPackagesHandler.NewHandler(packageSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	createPackage := createPackageHandler.NewHandler(packageSvc, log)
	updatePackage := updatePackageHandler.NewHandler(packageSvc, log)
	deletePackage := deletePackageHandler.NewHandler(packageSvc, log)

	// Фоновые процессы
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	// Очистка зависших pending-бронирований
	go expirySvc.Run(bgCtx)

	// Подписка на инвалидации занятости от других инстансов
	if occCache != nil {
		go func() {
			for monthKey := range occCache.SubscribeInvalidation(bgCtx) {
				availabilitySvc.Drop(bgCtx, monthKey)
			}
		}()
		log.Info("Subscribed to availability invalidation channel")
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятость месяца для календаря
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Полная сетка слотов дня
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Каталог пакетов
	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Ref header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Подтверждение оплаты
	protected.HandleFunc("/payments/verify", verifyPayment.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Список бронирований
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Снятие бронирования
	admin.HandleFunc("/bookings/{id}/reject", rejectBooking.Handle).Methods(http.MethodPost)

	// Управление каталогом пакетов
	admin.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/packages", createPackage.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/packages/{id}", updatePackage.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/packages/{id}", deletePackage.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновые процессы и сбор метрик
	bgCancel()
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

// eventPublisher прячет nil producer за nil интерфейсом,
// чтобы проверки events == nil в сервисах работали
func eventPublisher(producer *stream.Producer) bookingsService.EventPublisher {
	if producer == nil {
		return nil
	}
	return producer
}
