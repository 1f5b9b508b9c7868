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

	cancelBookingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/cancel_booking"
	getBookingsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_bookings"
	getSettingsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_settings"
	handleWebhookHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/handle_webhook"
	markBookingPaidHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/mark_booking_paid"
	markMaintenancePaidHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/mark_maintenance_paid"
	markMaintenanceUnpaidHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/mark_maintenance_unpaid"
	runMaintenanceSweepHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/run_maintenance_sweep"
	runPaymentSweepHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/run_payment_sweep"
	updateSettingsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HallBookingService/internal/config"
	"github.com/m04kA/SMC-HallBookingService/internal/infra/sessionstore"
	bookingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/booking"
	maintenanceRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/maintenance"
	profileRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/profile"
	settingsRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/settings"
	whatsappClient "github.com/m04kA/SMC-HallBookingService/internal/integrations/whatsapp"
	bookingsService "github.com/m04kA/SMC-HallBookingService/internal/service/bookings"
	maintenanceService "github.com/m04kA/SMC-HallBookingService/internal/service/maintenance"
	settingsService "github.com/m04kA/SMC-HallBookingService/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_booking"
	handleMessageUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/handle_message"
	maintenanceSweepUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/maintenance_sweep"
	paymentSweepUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/payment_sweep"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/logger"
	"github.com/m04kA/SMC-HallBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HallBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-HallBookingService...")
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

	// Инициализируем клиента WhatsApp-шлюза
	whatsapp := whatsappClient.NewClient(
		cfg.WhatsApp.URL,
		cfg.WhatsApp.Token,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("WhatsApp gateway client initialized (url=%s, timeout=%ds)",
		cfg.WhatsApp.URL, cfg.WhatsApp.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		profileRepository     *profileRepo.Repository
		maintenanceRepository *maintenanceRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		maintenanceRepository = maintenanceRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		maintenanceRepository = maintenanceRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище диалоговых сессий
	sessions := sessionstore.NewMemoryStore(time.Duration(cfg.Session.TTLHours) * time.Hour)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		cfg.Booking.HallCharge,
		log,
	)

	handleMessageUseCase := handleMessageUC.NewUseCase(
		profileRepository,
		bookingRepository,
		settingsRepository,
		sessions,
		createBookingUseCase,
		log,
	)

	paymentSweepUseCase := paymentSweepUC.NewUseCase(
		bookingRepository,
		profileRepository,
		whatsapp,
		log,
	)

	maintenanceSweepUseCase := maintenanceSweepUC.NewUseCase(
		maintenanceRepository,
		profileRepository,
		whatsapp,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		profileRepository,
		whatsapp,
		log,
	)
	maintenanceSvc := maintenanceService.NewService(
		maintenanceRepository,
		profileRepository,
		whatsapp,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	handleWebhook := handleWebhookHandler.NewHandler(handleMessageUseCase, log)
	runPaymentSweep := runPaymentSweepHandler.NewHandler(paymentSweepUseCase, log)
	runMaintenanceSweep := runMaintenanceSweepHandler.NewHandler(maintenanceSweepUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	markBookingPaid := markBookingPaidHandler.NewHandler(bookingSvc, log)
	markMaintenancePaid := markMaintenancePaidHandler.NewHandler(maintenanceSvc, log)
	markMaintenanceUnpaid := markMaintenanceUnpaidHandler.NewHandler(maintenanceSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (шлюз сообщений и админские операции)
	// ============================================================

	// Входящее сообщение от WhatsApp-шлюза
	api.HandleFunc("/webhook", handleWebhook.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования администратором
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Отметка об оплате бронирования
	api.HandleFunc("/bookings/{bookingId}/paid", markBookingPaid.Handle).Methods(http.MethodPatch)

	// Отметки об оплате ежемесячных взносов
	api.HandleFunc("/maintenance/{paymentId}/paid", markMaintenancePaid.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/maintenance/{paymentId}/unpaid", markMaintenanceUnpaid.Handle).Methods(http.MethodPatch)

	// Настройки бронирования
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Scheduler-Token header)
	// ============================================================

	protected := api.PathPrefix("/sweeps").Subrouter()
	protected.Use(middleware.SharedSecret(cfg.Scheduler.Token, log))

	// Проход по оплатам бронирований (напоминания, отмены, подтверждения)
	protected.HandleFunc("/payments", runPaymentSweep.Handle).Methods(http.MethodPost)

	// Проход по ежемесячным взносам (новые строки, напоминания)
	protected.HandleFunc("/maintenance", runMaintenanceSweep.Handle).Methods(http.MethodPost)

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
