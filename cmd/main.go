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

	createTableHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/create_table"
	createTypeRelationHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/create_type_relation"
	deleteTableHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/delete_table"
	deleteTypeRelationHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/delete_type_relation"
	getAvailableTimeSlotsHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/get_available_time_slots"
	getSeatHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/get_seat"
	getTableHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/get_table"
	getTypeRelationHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/get_type_relation"
	listAvailableSeatsHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/list_available_seats"
	listSeatsHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/list_seats"
	listTablesHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/list_tables"
	listTypeRelationsHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/list_type_relations"
	updateTableHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/update_table"
	updateTypeRelationHandler "github.com/tak4ma/VMS-BanquetService/internal/api/handlers/update_type_relation"
	"github.com/tak4ma/VMS-BanquetService/internal/api/middleware"
	"github.com/tak4ma/VMS-BanquetService/internal/config"
	banquetRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/banquet"
	reservationRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/reservation"
	spiritRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/spirit"
	typeRelationRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/typerelation"
	banquetService "github.com/tak4ma/VMS-BanquetService/internal/service/banquet"
	typeRelationService "github.com/tak4ma/VMS-BanquetService/internal/service/typerelation"
	getAvailableTimeSlotsUC "github.com/tak4ma/VMS-BanquetService/internal/usecase/get_available_time_slots"
	listAvailableSeatsUC "github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
	"github.com/tak4ma/VMS-BanquetService/pkg/dbmetrics"
	"github.com/tak4ma/VMS-BanquetService/pkg/logger"
	"github.com/tak4ma/VMS-BanquetService/pkg/metrics"
	"github.com/tak4ma/VMS-BanquetService/pkg/simpletxmanager"
	"github.com/tak4ma/VMS-BanquetService/pkg/txmanager"
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

	log.Info("Starting VMS-BanquetService...")
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
		banquetRepository      *banquetRepo.Repository
		reservationRepository  *reservationRepo.Repository
		spiritRepository       *spiritRepo.Repository
		typeRelationRepository *typeRelationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		banquetRepository = banquetRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		spiritRepository = spiritRepo.NewRepository(wrappedDB)
		typeRelationRepository = typeRelationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		banquetRepository = banquetRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		spiritRepository = spiritRepo.NewRepository(db)
		typeRelationRepository = typeRelationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	banquetSvc := banquetService.NewService(banquetRepository, txMgr, log)
	typeRelationSvc := typeRelationService.NewService(typeRelationRepository, log)

	// Инициализируем use cases
	listAvailableSeatsUseCase := listAvailableSeatsUC.NewUseCase(
		banquetRepository,
		reservationRepository,
		spiritRepository,
		typeRelationSvc,
		log,
	)

	getAvailableTimeSlotsUseCase := getAvailableTimeSlotsUC.NewUseCase(
		listAvailableSeatsUseCase,
		log,
	)

	// Инициализируем handlers
	listAvailableSeats := listAvailableSeatsHandler.NewHandler(listAvailableSeatsUseCase, log)
	getAvailableTimeSlots := getAvailableTimeSlotsHandler.NewHandler(getAvailableTimeSlotsUseCase, log)
	createTable := createTableHandler.NewHandler(banquetSvc, log)
	listTables := listTablesHandler.NewHandler(banquetSvc, log)
	getTable := getTableHandler.NewHandler(banquetSvc, log)
	updateTable := updateTableHandler.NewHandler(banquetSvc, log)
	deleteTable := deleteTableHandler.NewHandler(banquetSvc, log)
	listSeats := listSeatsHandler.NewHandler(banquetSvc, log)
	getSeat := getSeatHandler.NewHandler(banquetSvc, log)
	createTypeRelation := createTypeRelationHandler.NewHandler(typeRelationSvc, log)
	listTypeRelations := listTypeRelationsHandler.NewHandler(typeRelationSvc, log)
	getTypeRelation := getTypeRelationHandler.NewHandler(typeRelationSvc, log)
	updateTypeRelation := updateTypeRelationHandler.NewHandler(typeRelationSvc, log)
	deleteTypeRelation := deleteTypeRelationHandler.NewHandler(typeRelationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// --- Доступность ---
	// Расчет доступности мест на конкретное окно времени
	r.HandleFunc("/banquet/table/available/{spiritId}",
		listAvailableSeats.Handle).Methods(http.MethodPost)

	// --- Столы и места ---
	// Маршруты /banquet/table и /banquet/seat регистрируются раньше
	// /banquet/{spiritId}, чтобы литеральные сегменты не съедались параметром
	r.HandleFunc("/banquet/table/", listTables.Handle).Methods(http.MethodGet)
	r.HandleFunc("/banquet/table/", createTable.Handle).Methods(http.MethodPost)
	r.HandleFunc("/banquet/table/{tableId}", getTable.Handle).Methods(http.MethodGet)
	r.HandleFunc("/banquet/table/{tableId}", updateTable.Handle).Methods(http.MethodPut)
	r.HandleFunc("/banquet/table/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/banquet/seat/", listSeats.Handle).Methods(http.MethodGet)
	r.HandleFunc("/banquet/seat/{seatId}", getSeat.Handle).Methods(http.MethodGet)

	// Свободные часовые слоты на дату
	r.HandleFunc("/banquet/{spiritId}/available_time_slots",
		getAvailableTimeSlots.Handle).Methods(http.MethodGet)

	// --- Правила совместимости типов ---
	r.HandleFunc("/type-relations/", listTypeRelations.Handle).Methods(http.MethodGet)
	r.HandleFunc("/type-relations/", createTypeRelation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/type-relations/{relationId}", getTypeRelation.Handle).Methods(http.MethodGet)
	r.HandleFunc("/type-relations/{relationId}", updateTypeRelation.Handle).Methods(http.MethodPut)
	r.HandleFunc("/type-relations/{relationId}", deleteTypeRelation.Handle).Methods(http.MethodDelete)

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
