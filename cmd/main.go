package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
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

	bookAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/book_appointment"
	createProviderHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_provider"
	createServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_service"
	deleteProviderHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_provider"
	deleteServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_client_appointments"
	getProviderHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_provider"
	getProviderAppointmentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_provider_appointments"
	getServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_service"
	listProvidersHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_providers"
	listServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_services"
	resolveWorkingIntervalsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/resolve_working_intervals"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment_status"
	updateProviderHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_provider"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	providerCache "github.com/m04kA/SMC-BarberBooking/internal/infra/cache/provider"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	providerRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/provider"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	appointmentsService "github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	providersService "github.com/m04kA/SMC-BarberBooking/internal/service/providers"
	servicesService "github.com/m04kA/SMC-BarberBooking/internal/service/services"
	bookAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	resolveWorkingIntervalsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/resolve_working_intervals"
	"github.com/m04kA/SMC-BarberBooking/migrations"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

// providerDirectory источник барберов для use cases: БД или кэш поверх неё
type providerDirectory interface {
	providerCache.Repository
}

// eventPublisher публикатор событий записей с закрытием при остановке
type eventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
	Close() error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		recorder         dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка БД с метриками (recorder == nil, если метрики выключены)
	wrappedDB := dbmetrics.WrapWithDefault(db, recorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	providerRepository := providerRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)

	// Кэш справочника барберов (если включен)
	var (
		providers      providerDirectory = providerRepository
		providerCacher providersService.ProviderCache
		redisClient    *redis.Client
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache will fall back to database: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cache := providerCache.NewCache(redisClient, providerRepository, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
		providers = cache
		providerCacher = cache
		log.Info("Provider cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Публикатор событий (если включен)
	var publisher eventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("Appointment events enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		txMgr,
		publisher,
		log,
	)
	providerSvc := providersService.NewService(
		providerRepository,
		providerCacher,
		txMgr,
		log,
	)
	serviceSvc := servicesService.NewService(serviceRepository, log)

	// Инициализируем use cases
	granularity := cfg.Booking.SlotGranularityMinutes

	resolveWorkingIntervalsUseCase := resolveWorkingIntervalsUC.NewUseCase(providers, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		providers,
		appointmentRepository,
		metricsCollector,
		granularity,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		providers,
		serviceRepository,
		appointmentRepository,
		txMgr,
		publisher,
		metricsCollector,
		granularity,
		log,
	)

	// Инициализируем handlers
	resolveWorkingIntervals := resolveWorkingIntervalsHandler.NewHandler(resolveWorkingIntervalsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getProviderAppointments := getProviderAppointmentsHandler.NewHandler(appointmentSvc, log)
	createProvider := createProviderHandler.NewHandler(providerSvc, log)
	listProviders := listProvidersHandler.NewHandler(providerSvc, log)
	getProvider := getProviderHandler.NewHandler(providerSvc, log)
	updateProvider := updateProviderHandler.NewHandler(providerSvc, log)
	deleteProvider := deleteProviderHandler.NewHandler(providerSvc, log)
	createService := createServiceHandler.NewHandler(serviceSvc, log)
	listServices := listServicesHandler.NewHandler(serviceSvc, log)
	getService := getServiceHandler.NewHandler(serviceSvc, log)
	deleteService := deleteServiceHandler.NewHandler(serviceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log), middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/providers/{providerId}/working-intervals", resolveWorkingIntervals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getClientAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/providers/{providerId}/appointments", getProviderAppointments.Handle).Methods(http.MethodGet)

	// --- Справочник барберов ---
	api.HandleFunc("/providers", createProvider.Handle).Methods(http.MethodPost)
	api.HandleFunc("/providers", listProviders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}", getProvider.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}", updateProvider.Handle).Methods(http.MethodPut)
	api.HandleFunc("/providers/{providerId}", deleteProvider.Handle).Methods(http.MethodDelete)

	// --- Прайс-лист услуг ---
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
