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

	createBookingHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/create_booking"
	createCandidateSlotHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/create_candidate_slot"
	createInterviewerSlotHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/create_interviewer_slot"
	getCandidateSlotsHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/get_candidate_slots"
	getDashboardHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/get_dashboard"
	getInterviewerSlotsHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/get_interviewer_slots"
	getWeekHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/get_week"
	setBookingLimitHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/set_booking_limit"
	updateBookingHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/update_booking"
	updateCandidateSlotHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/update_candidate_slot"
	updateInterviewerSlotHandler "github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers/update_interviewer_slot"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/config"
	bookingRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/booking"
	bookingLimitRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/bookinglimit"
	candidateSlotRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/candidateslot"
	interviewerSlotRepo "github.com/m04kA/SMC-InterviewPlanning/internal/infra/storage/interviewerslot"
	candidateSlotsService "github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots"
	dashboardService "github.com/m04kA/SMC-InterviewPlanning/internal/service/dashboard"
	interviewerSlotsService "github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
	weekclockService "github.com/m04kA/SMC-InterviewPlanning/internal/service/weekclock"
	createBookingUC "github.com/m04kA/SMC-InterviewPlanning/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/SMC-InterviewPlanning/internal/usecase/update_booking"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/logger"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/metrics"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/txmanager"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
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

	log.Info("Starting SMC-InterviewPlanning...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	candidateSlotRepository := candidateSlotRepo.NewRepository(db)
	interviewerSlotRepository := interviewerSlotRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	bookingLimitRepository := bookingLimitRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Рабочие часы прошли валидацию на этапе загрузки конфигурации
	workingHoursFrom, _ := types.NewTimeStringFromString(cfg.Interview.WorkingHoursFrom)
	workingHoursTo, _ := types.NewTimeStringFromString(cfg.Interview.WorkingHoursTo)

	// Инициализируем доменные сервисы
	clock := weekclockService.SystemClock{}
	weekClock := weekclockService.NewService(clock)
	boundaryValidator := timeslot.NewValidator(cfg.Interview.DurationMinutes, workingHoursFrom, workingHoursTo)

	candidateSlotsSvc := candidateSlotsService.NewService(
		candidateSlotRepository,
		boundaryValidator,
		txMgr,
		clock,
		log,
	)
	interviewerSlotsSvc := interviewerSlotsService.NewService(
		interviewerSlotRepository,
		bookingRepository,
		bookingLimitRepository,
		weekClock,
		boundaryValidator,
		txMgr,
		log,
	)
	dashboardSvc := dashboardService.NewService(
		interviewerSlotRepository,
		candidateSlotRepository,
		bookingRepository,
		weekClock,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		interviewerSlotRepository,
		candidateSlotRepository,
		bookingRepository,
		bookingLimitRepository,
		weekClock,
		boundaryValidator,
		txMgr,
		log,
		cfg.Booking.MaxSubjectLength,
		cfg.Booking.MaxDescriptionLength,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		interviewerSlotRepository,
		candidateSlotRepository,
		bookingRepository,
		bookingLimitRepository,
		weekClock,
		boundaryValidator,
		txMgr,
		log,
		cfg.Booking.MaxSubjectLength,
		cfg.Booking.MaxDescriptionLength,
	)

	// Инициализируем handlers
	createCandidateSlot := createCandidateSlotHandler.NewHandler(candidateSlotsSvc, log)
	updateCandidateSlot := updateCandidateSlotHandler.NewHandler(candidateSlotsSvc, log)
	getCandidateSlots := getCandidateSlotsHandler.NewHandler(candidateSlotsSvc, log)
	createInterviewerSlot := createInterviewerSlotHandler.NewHandler(interviewerSlotsSvc, log)
	updateInterviewerSlot := updateInterviewerSlotHandler.NewHandler(interviewerSlotsSvc, log)
	getInterviewerSlots := getInterviewerSlotsHandler.NewHandler(interviewerSlotsSvc, weekClock, log)
	setBookingLimit := setBookingLimitHandler.NewHandler(interviewerSlotsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	getWeek := getWeekHandler.NewHandler(weekClock, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все операции требуют заголовков X-User-Email и X-User-Role
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Недели ---
	protected.HandleFunc("/weeks/current", getWeek.HandleCurrent).Methods(http.MethodGet)
	protected.HandleFunc("/weeks/next", getWeek.HandleNext).Methods(http.MethodGet)
	protected.HandleFunc("/weeks/{weekNum}/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Слоты кандидата ---
	protected.HandleFunc("/candidates/current/slots", createCandidateSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/candidates/current/slots", getCandidateSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/candidates/current/slots/{slotId}", updateCandidateSlot.Handle).Methods(http.MethodPost)

	// --- Слоты интервьюера ---
	protected.HandleFunc("/interviewers/current/slots", createInterviewerSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/interviewers/current/slots", getInterviewerSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/interviewers/current/slots/{slotId}", updateInterviewerSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/interviewers/current/booking-limit", setBookingLimit.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
