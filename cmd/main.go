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

	bookRegularSessionHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/book_regular_session"
	bookTrialSessionHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/book_trial_session"
	executePaymentHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/execute_payment"
	getAvailableLessonsHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/get_available_lessons"
	getMonthScheduleHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/get_month_schedule"
	getTrialAvailabilityHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/get_trial_availability"
	preparePaymentLinkHandler "github.com/m04kA/TWS-LessonService/internal/api/handlers/prepare_payment_link"
	"github.com/m04kA/TWS-LessonService/internal/api/middleware"
	"github.com/m04kA/TWS-LessonService/internal/config"
	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
	paymentCredentialRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/paymentcredential"
	tutorRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/tutor"
	googleCalendarClient "github.com/m04kA/TWS-LessonService/internal/integrations/googlecalendar"
	paypalClient "github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
	lessonsService "github.com/m04kA/TWS-LessonService/internal/service/lessons"
	paymentsService "github.com/m04kA/TWS-LessonService/internal/service/payments"
	bookRegularSessionUC "github.com/m04kA/TWS-LessonService/internal/usecase/book_regular_session"
	bookTrialSessionUC "github.com/m04kA/TWS-LessonService/internal/usecase/book_trial_session"
	executePaymentUC "github.com/m04kA/TWS-LessonService/internal/usecase/execute_payment"
	getMonthScheduleUC "github.com/m04kA/TWS-LessonService/internal/usecase/get_month_schedule"
	"github.com/m04kA/TWS-LessonService/pkg/dbmetrics"
	"github.com/m04kA/TWS-LessonService/pkg/logger"
	"github.com/m04kA/TWS-LessonService/pkg/metrics"
	"github.com/m04kA/TWS-LessonService/pkg/migrate"
	"github.com/m04kA/TWS-LessonService/pkg/simpletxmanager"
	"github.com/m04kA/TWS-LessonService/pkg/txmanager"
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

	log.Info("Starting TWS-LessonService...")
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

	// Накатываем миграции
	migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, current version: %d", version)
	}

	// Инициализируем интеграционных клиентов
	calendarClient, err := googleCalendarClient.NewClient(googleCalendarClient.Config{
		BaseURL:      cfg.GoogleCalendar.BaseURL,
		TokenURL:     cfg.GoogleCalendar.TokenURL,
		APIKey:       cfg.GoogleCalendar.APIKey,
		ClientID:     cfg.GoogleCalendar.ClientID,
		ClientSecret: cfg.GoogleCalendar.ClientSecret,
		RefreshToken: cfg.GoogleCalendar.RefreshToken,
		Timezone:     cfg.GoogleCalendar.Timezone,
		EventSummary: cfg.GoogleCalendar.EventSummary,
		Timeout:      time.Duration(cfg.GoogleCalendar.Timeout) * time.Second,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize calendar client: %v", err)
	}

	payClient := paypalClient.NewClient(
		cfg.PayPal.BaseURL,
		time.Duration(cfg.PayPal.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GoogleCalendar=%s timeout=%ds, PayPal=%s timeout=%ds)",
		cfg.GoogleCalendar.BaseURL, cfg.GoogleCalendar.Timeout, cfg.PayPal.BaseURL, cfg.PayPal.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		creditRepository     *lessonCreditRepo.Repository
		credentialRepository *paymentCredentialRepo.Repository
		tutorRepository      *tutorRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		creditRepository = lessonCreditRepo.NewRepository(wrappedDB)
		credentialRepository = paymentCredentialRepo.NewRepository(wrappedDB)
		tutorRepository = tutorRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		creditRepository = lessonCreditRepo.NewRepository(db)
		credentialRepository = paymentCredentialRepo.NewRepository(db)
		tutorRepository = tutorRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	lessonsSvc := lessonsService.NewService(creditRepository, log)
	paymentsSvc := paymentsService.NewService(
		creditRepository,
		credentialRepository,
		payClient,
		cfg.Pricing.LessonPrice,
		cfg.Pricing.Currency,
		log,
	)

	// Инициализируем use cases
	bookTrialSessionUseCase := bookTrialSessionUC.NewUseCase(
		creditRepository,
		tutorRepository,
		calendarClient,
		log,
	)

	bookRegularSessionUseCase := bookRegularSessionUC.NewUseCase(
		creditRepository,
		tutorRepository,
		calendarClient,
		log,
	)

	executePaymentUseCase := executePaymentUC.NewUseCase(
		credentialRepository,
		creditRepository,
		payClient,
		txMgr,
		log,
	)

	getMonthScheduleUseCase := getMonthScheduleUC.NewUseCase(
		tutorRepository,
		calendarClient,
		log,
	)

	// Инициализируем handlers
	bookTrialSession := bookTrialSessionHandler.NewHandler(bookTrialSessionUseCase, log)
	bookRegularSession := bookRegularSessionHandler.NewHandler(bookRegularSessionUseCase, log)
	executePayment := executePaymentHandler.NewHandler(executePaymentUseCase, log)
	getMonthSchedule := getMonthScheduleHandler.NewHandler(getMonthScheduleUseCase, log)
	getAvailableLessons := getAvailableLessonsHandler.NewHandler(lessonsSvc, log)
	getTrialAvailability := getTrialAvailabilityHandler.NewHandler(lessonsSvc, log)
	preparePaymentLink := preparePaymentLinkHandler.NewHandler(paymentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	// Сетка занятости тьютора за месяц
	api.HandleFunc("/tutors/{tutorEmail}/schedule", getMonthSchedule.Handle).Methods(http.MethodGet)

	// --- Студенты ---
	// Количество доступных уроков студента
	api.HandleFunc("/students/{email}/lessons", getAvailableLessons.Handle).Methods(http.MethodGet)

	// Доступность пробного урока
	api.HandleFunc("/students/{email}/trial", getTrialAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Бронирование пробного урока
	api.HandleFunc("/sessions/trial", bookTrialSession.Handle).Methods(http.MethodPost)

	// Бронирование оплаченного урока
	api.HandleFunc("/sessions/regular", bookRegularSession.Handle).Methods(http.MethodPost)

	// --- Платежи ---
	// Подготовка ссылки на оплату
	api.HandleFunc("/payments/link", preparePaymentLink.Handle).Methods(http.MethodPost)

	// Исполнение одобренного платежа
	api.HandleFunc("/payments/execute", executePayment.Handle).Methods(http.MethodPost)

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
