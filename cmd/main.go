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

	assignAdvisoryHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/assign_advisory"
	changeStatusHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/change_status"
	createAdvisoryHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/create_advisory"
	deleteAdvisoryHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/delete_advisory"
	getAdvisoryHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/get_advisory"
	getAvailableSlotsHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/get_available_slots"
	getProfessorAdvisoriesHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/get_professor_advisories"
	getStudentAdvisoriesHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/get_student_advisories"
	listAdvisoriesHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/list_advisories"
	updateAdvisoryHandler "github.com/uteq-platform/AdvisoryService/internal/api/handlers/update_advisory"
	"github.com/uteq-platform/AdvisoryService/internal/api/middleware"
	"github.com/uteq-platform/AdvisoryService/internal/config"
	advisoryRepo "github.com/uteq-platform/AdvisoryService/internal/infra/storage/advisory"
	slotRepo "github.com/uteq-platform/AdvisoryService/internal/infra/storage/slot"
	adminServiceClient "github.com/uteq-platform/AdvisoryService/internal/integrations/adminservice"
	advisoriesService "github.com/uteq-platform/AdvisoryService/internal/service/advisories"
	slotsService "github.com/uteq-platform/AdvisoryService/internal/service/slots"
	assignAdvisoryUC "github.com/uteq-platform/AdvisoryService/internal/usecase/assign_advisory"
	createAdvisoryUC "github.com/uteq-platform/AdvisoryService/internal/usecase/create_advisory"
	"github.com/uteq-platform/AdvisoryService/pkg/dbmetrics"
	"github.com/uteq-platform/AdvisoryService/pkg/logger"
	"github.com/uteq-platform/AdvisoryService/pkg/metrics"
	"github.com/uteq-platform/AdvisoryService/pkg/simpletxmanager"
	"github.com/uteq-platform/AdvisoryService/pkg/txmanager"
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

	log.Info("Starting AdvisoryService...")
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

	// Инициализируем клиента AdminService
	adminClient := adminServiceClient.NewClient(
		cfg.AdminService.URL,
		time.Duration(cfg.AdminService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AdminService=%s timeout=%ds)",
		cfg.AdminService.URL, cfg.AdminService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		advisoryRepository *advisoryRepo.Repository
		slotRepository     *slotRepo.Repository
		txMgr              advisoriesService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		advisoryRepository = advisoryRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		advisoryRepository = advisoryRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	advisoriesSvc := advisoriesService.NewService(
		advisoryRepository,
		slotRepository,
		txMgr,
		log,
	)
	slotsSvc := slotsService.NewService(slotRepository, log)

	// Инициализируем use cases
	createAdvisoryUseCase := createAdvisoryUC.NewUseCase(
		advisoryRepository,
		slotRepository,
		adminClient,
		log,
	)
	assignAdvisoryUseCase := assignAdvisoryUC.NewUseCase(
		advisoryRepository,
		slotRepository,
		adminClient,
		log,
	)

	// Инициализируем handlers
	createAdvisory := createAdvisoryHandler.NewHandler(createAdvisoryUseCase, log)
	assignAdvisory := assignAdvisoryHandler.NewHandler(assignAdvisoryUseCase, log)
	getAdvisory := getAdvisoryHandler.NewHandler(advisoriesSvc, log)
	listAdvisories := listAdvisoriesHandler.NewHandler(advisoriesSvc, log)
	getProfessorAdvisories := getProfessorAdvisoriesHandler.NewHandler(advisoriesSvc, log)
	getStudentAdvisories := getStudentAdvisoriesHandler.NewHandler(advisoriesSvc, log)
	updateAdvisory := updateAdvisoryHandler.NewHandler(advisoriesSvc, log)
	changeStatus := changeStatusHandler.NewHandler(advisoriesSvc, log)
	deleteAdvisory := deleteAdvisoryHandler.NewHandler(advisoriesSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты профессора
	api.HandleFunc("/professors/{professorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Консультации ---
	// Создание консультации студентом (выбор конкретного слота)
	protected.HandleFunc("/advisories", createAdvisory.Handle).Methods(http.MethodPost)

	// Назначение консультации профессором (поиск слота по дате и времени)
	protected.HandleFunc("/advisories/assign", assignAdvisory.Handle).Methods(http.MethodPost)

	// Список консультаций с фильтрацией по статусу и дате
	protected.HandleFunc("/advisories", listAdvisories.Handle).Methods(http.MethodGet)

	// Получение консультации по ID
	protected.HandleFunc("/advisories/{advisoryId}", getAdvisory.Handle).Methods(http.MethodGet)

	// Обновление темы и заметок консультации
	protected.HandleFunc("/advisories/{advisoryId}", updateAdvisory.Handle).Methods(http.MethodPut)

	// Перевод консультации в новый статус
	protected.HandleFunc("/advisories/{advisoryId}/status/{newStatus}",
		changeStatus.Handle).Methods(http.MethodPut)

	// Удаление консультации с освобождением слота
	protected.HandleFunc("/advisories/{advisoryId}", deleteAdvisory.Handle).Methods(http.MethodDelete)

	// История консультаций профессора
	protected.HandleFunc("/professors/{professorId}/advisories",
		getProfessorAdvisories.Handle).Methods(http.MethodGet)

	// История консультаций студента
	protected.HandleFunc("/students/{studentId}/advisories",
		getStudentAdvisories.Handle).Methods(http.MethodGet)

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
